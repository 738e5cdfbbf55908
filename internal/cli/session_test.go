package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, elem string) (executor, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cfg := DefaultConfig()
	cfg.Elem = elem
	cfg.WorkDir = t.TempDir()

	exec, err := newExecutor(cfg, NewIO(&out, &out))
	require.NoError(t, err)

	return exec, &out
}

func Test_NewExecutor_Returns_Error_When_Elem_Unknown(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Elem = "float"

	_, err := newExecutor(cfg, NewIO(&bytes.Buffer{}, &bytes.Buffer{}))
	require.ErrorIs(t, err, errUnknownElem)
}

func Test_Session_Ignores_Blank_And_Comment_Lines_When_Executed(t *testing.T) {
	t.Parallel()

	exec, out := newTestSession(t, ElemInt)

	require.NoError(t, exec.Exec(""))
	require.NoError(t, exec.Exec("   "))
	require.NoError(t, exec.Exec("# push 1"))
	assert.Empty(t, out.String())
}

func Test_Session_Accepts_Op_In_Any_Case_When_Executed(t *testing.T) {
	t.Parallel()

	exec, out := newTestSession(t, ElemInt)

	require.NoError(t, exec.Exec("PUSH 1 2"))
	require.NoError(t, exec.Exec("Len"))
	assert.Equal(t, "2\n", out.String())
}

func Test_Session_Wraps_Errors_With_Op_Name_When_Op_Fails(t *testing.T) {
	t.Parallel()

	exec, _ := newTestSession(t, ElemInt)

	cases := []struct {
		line string
		want error
	}{
		{line: "frob", want: errUnknownOp},
		{line: "push", want: errMissingArg},
		{line: "insert 0", want: errMissingArg},
		{line: "insert x 1", want: errBadArg},
		{line: "assign -1 5", want: errBadArg},
		{line: "assign 3", want: errMissingArg},
		{line: "assign 16777217 0", want: errBadArg},
		{line: "reserve 99999999999", want: errBadArg},
		{line: "set 0", want: errMissingArg},
		{line: "save", want: errMissingArg},
		{line: "eq", want: nil},
	}

	for _, tc := range cases {
		err := exec.Exec(tc.line)
		if tc.want == nil {
			assert.NoError(t, err, tc.line)
			continue
		}

		require.ErrorIs(t, err, tc.want, tc.line)
		assert.Contains(t, err.Error(), firstWord(tc.line)+": ", tc.line)
	}
}

func Test_Session_Leaves_Vector_Unchanged_When_Insert_Position_Invalid(t *testing.T) {
	t.Parallel()

	exec, out := newTestSession(t, ElemInt)

	require.NoError(t, exec.Exec("push 1 2"))
	require.Error(t, exec.Exec("insert 5 9"))
	require.Error(t, exec.Exec("insert -1 9"))
	require.Error(t, exec.Exec("erase 2"))
	require.Error(t, exec.Exec("erase 1 0"))
	require.NoError(t, exec.Exec("list"))

	assert.Equal(t, "1 2\n", out.String())
}

func Test_Session_Prints_Help_When_Help_Op(t *testing.T) {
	t.Parallel()

	exec, out := newTestSession(t, ElemString)

	require.NoError(t, exec.Exec("help"))

	for _, name := range opNames() {
		assert.Contains(t, out.String(), "  "+name+" ")
	}
}

func Test_CompleteOp_Returns_Matching_Names_When_Prefix_Given(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"push", "pushf"}, completeOp("pu"))
	assert.Equal(t, []string{"erase", "eq", "exit"}, completeOp("E"))
	assert.Equal(t, []string{"insert", "insertr"}, completeOp("insert"))
	assert.Nil(t, completeOp("zz"))
}

func firstWord(line string) string {
	for i, r := range line {
		if r == ' ' {
			return line[:i]
		}
	}

	return line
}
