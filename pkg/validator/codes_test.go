package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCodes(t *testing.T) {
	codes := Codes()
	require.Len(t, codes, 24)
	assert.Equal(t, CodeDuplicateJobID, codes[0])
	assert.Equal(t, CodeMissingCostObjective, codes[len(codes)-1])

	for _, c := range codes {
		assert.True(t, c.IsKnown(), c.String())
		assert.NotEmpty(t, c.Description(), c.String())
	}
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "E1100", CodeDuplicateJobID.String())
	assert.Equal(t, "E1611", CodeMissingCostObjective.String())
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    Code
		wantErr bool
	}{
		{in: "E1305", want: CodeInvalidAllowedArea},
		{in: "E1600", want: CodeEmptyObjectives},
		{in: "1305", wantErr: true},
		{in: "E13x5", wantErr: true},
		{in: "E1400", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCode_Serialization(t *testing.T) {
	v := Violation{Code: CodeReservedJobID, Message: "m"}

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"E1104","message":"m"}`, string(data))

	var decoded Violation
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, v, decoded)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "code: E1104")

	_, err = json.Marshal(Violation{Code: Code(42)})
	assert.Error(t, err)
}

func TestViolation_String(t *testing.T) {
	v := newViolation(CodeEmptyRelation, "relation[3]", "%s has no jobs", "relation[3]")
	assert.Equal(t, "E1202: relation has empty job id list: relation[3] has no jobs", v.String())
}
