package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillList_UnmarshalArray(t *testing.T) {
	t.Parallel()

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`["go","rust"]`), &s))
	assert.Equal(t, SkillList{"go", "rust"}, s)
}

func TestSkillList_UnmarshalCommaString(t *testing.T) {
	t.Parallel()

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`"js, react , node"`), &s))
	assert.Equal(t, SkillList{"js", "react", "node"}, s)
}

func TestSkillList_DropsEmptyElements(t *testing.T) {
	t.Parallel()

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`"go,,  ,rust"`), &s))
	assert.Equal(t, SkillList{"go", "rust"}, s)
}

func TestSkillList_EmptyStringIsEmptyNonNil(t *testing.T) {
	t.Parallel()

	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`""`), &s))
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestSkillList_RejectsNumbers(t *testing.T) {
	t.Parallel()

	var s SkillList
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}
