/*
Copyright 2025 The AlaudaDevops Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConstraint(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantErr bool
	}{
		{name: "simple range", expr: ">= 2.0, < 3"},
		{name: "exact version", expr: "1.2.3"},
		{name: "caret range", expr: "^1.2"},
		{name: "tilde range", expr: "~2.1.0"},
		{name: "or ranges", expr: ">= 1.0 || < 0.5"},
		{name: "wildcard patch", expr: "4.20.x"},
		{name: "empty constraint", expr: "", wantErr: true},
		{name: "whitespace only", expr: "   ", wantErr: true},
		{name: "garbage", expr: "not-a-constraint ~~", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConstraint(tt.expr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidVersion(t *testing.T) {
	assert.True(t, ValidVersion("1.2.3"))
	assert.True(t, ValidVersion("v1.2.3"))
	assert.True(t, ValidVersion("1.2"))
	assert.True(t, ValidVersion("1"))
	assert.True(t, ValidVersion("1.0.0-beta.1"))
	assert.False(t, ValidVersion("latest"))
	assert.False(t, ValidVersion(""))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1.0.0", Normalize("1"))
	assert.Equal(t, "1.2.0", Normalize("1.2"))
	assert.Equal(t, "1.2.3", Normalize("v1.2.3"))
	assert.Equal(t, "", Normalize(""))
}
