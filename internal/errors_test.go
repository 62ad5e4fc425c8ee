package filespecs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpansion_String(t *testing.T) {
	for key, tc := range map[string]struct {
		exp  Expansion
		want string
	}{
		"empty": {
			exp:  Expansion{Pattern: "/tmp/x_b"},
			want: "/tmp/x_b expanded to empty",
		},
		"malformed": {
			exp:  Expansion{Pattern: "/tmp/[", Err: filepath.ErrBadPattern},
			want: "/tmp/[ expanded to empty (syntax error in pattern)",
		},
		"matched": {
			exp:  Expansion{Pattern: "/tmp/x/*", Matches: []string{"/tmp/x/a.foo", "/tmp/x/b.txt"}},
			want: "/tmp/x/* expanded to [/tmp/x/a.foo /tmp/x/b.txt]",
		},
	} {
		t.Run(key, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.exp.String())
		})
	}
}

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusEmpty, Expansion{}.Status())
	assert.Equal(t, StatusMatched, Expansion{Matches: []string{"/a"}}.Status())
	assert.Equal(t, "EMPTY", StatusEmpty.String())
	assert.Equal(t, "MATCHED", StatusMatched.String())
	assert.Equal(t, "Status(7)", Status(7).String())
}

func TestNoMatchError(t *testing.T) {
	var err error = &NoMatchError{Expansions: []Expansion{
		{Pattern: "/tmp/x_b"},
		{Pattern: "/tmp/x/*", Matches: []string{"/tmp/x/b.txt"}},
		{Pattern: "*.nc"},
	}}

	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.Equal(
		t,
		"one or more filespecs did not match any files: "+
			"[/tmp/x_b expanded to empty, /tmp/x/* expanded to [/tmp/x/b.txt], *.nc expanded to empty]",
		err.Error(),
	)

	var nerr *NoMatchError
	if assert.ErrorAs(t, err, &nerr) {
		assert.Equal(t, []string{"/tmp/x_b", "*.nc"}, nerr.Failed())
	}
}
