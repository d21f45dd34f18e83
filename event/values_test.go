package event

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFactValues(t *testing.T) {
	fv, err := ParseFactValues("AUTHOR:ct_plus|GM_AUTHOR:pr_minus")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AUTHOR": "ct_plus", "GM_AUTHOR": "pr_minus"}, fv)
}

func TestParsePragValues(t *testing.T) {
	pv, err := ParsePragValues("ct_plus:6|ct_minus:4|uu:0")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"ct_plus": 6, "ct_minus": 4, "uu": 0}, pv)
}

func TestParseValuesMalformed(t *testing.T) {
	for _, s := range []string{"", "AUTHOR", "AUTHOR:ct_plus|", "|AUTHOR:ct_plus", "a:b:c", "AUTHOR:ct_plus||x:y"} {
		_, err := ParseFactValues(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrMalformed), s)
	}

	for _, s := range []string{"", "ct_plus", "ct_plus:", "ct_plus:x", "ct_plus:-1", "ct_plus:1.5", "ct_plus:3|"} {
		_, err := ParsePragValues(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrMalformed), s)
	}
}

func TestValuesRoundTrip(t *testing.T) {
	for _, s := range []string{
		"AUTHOR:ct_plus",
		"GM_AUTHOR:pr_minus|AUTHOR:ct_plus",
		"AUTHOR:uu|ROBERTS_AUTHOR:ps_plus|DAVIS_GM_AUTHOR:ct_minus",
	} {
		fv, err := ParseFactValues(s)
		require.NoError(t, err)

		again, err := ParseFactValues(FormatFactValues(fv))
		require.NoError(t, err)
		assert.Equal(t, fv, again)
	}

	for _, s := range []string{
		"ct_plus:10",
		"ct_minus:4|ct_plus:6",
		"uu:1|pr_plus:2|ps_plus:3|ct_plus:4",
	} {
		pv, err := ParsePragValues(s)
		require.NoError(t, err)

		again, err := ParsePragValues(FormatPragValues(pv))
		require.NoError(t, err)
		assert.Equal(t, pv, again)
	}
}

func TestFormatSortsKeys(t *testing.T) {
	assert.Equal(t, "ct_minus:4|ct_plus:6", FormatPragValues(map[string]int{"ct_plus": 6, "ct_minus": 4}))
	assert.Equal(t, "AUTHOR:ct_plus|GM_AUTHOR:uu", FormatFactValues(map[string]string{"GM_AUTHOR": "uu", "AUTHOR": "ct_plus"}))
}
