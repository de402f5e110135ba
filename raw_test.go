package gitcmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/gitcmd"
)

func TestParseRaw(t *testing.T) {
	t.Parallel()

	t.Run("parses a modified file with merged counts", func(t *testing.T) {
		t.Parallel()

		input := ":100644 100644 aaa1111 bbb2222 M\tlib/foo.rb\n" +
			"3\t1\tlib/foo.rb\n" +
			" 1 file changed, 3 insertions(+), 1 deletion(-)\n"
		result := gitcmd.ParseRaw(input, false)

		assert.Equal(t, 1, result.FilesChanged)
		require.Len(t, result.Files, 1)
		f := result.Files[0]
		assert.Equal(t, gitcmd.StatusModified, f.Status)
		assert.Equal(t, "lib/foo.rb", f.Path)
		assert.Equal(t, 3, f.Insertions)
		assert.Equal(t, 1, f.Deletions)
		require.NotNil(t, f.Src)
		require.NotNil(t, f.Dst)
		assert.Equal(t, "100644", f.Src.Mode)
		assert.Equal(t, "aaa1111", f.Src.SHA)
		assert.Equal(t, "bbb2222", f.Dst.SHA)
	})

	t.Run("parses a rename with similarity", func(t *testing.T) {
		t.Parallel()

		input := ":100644 100644 aaa1111 bbb2222 R100\told/path.rb\tnew/path.rba\n"
		result := gitcmd.ParseRaw(input, false)

		require.Len(t, result.Files, 1)
		f := result.Files[0]
		assert.Equal(t, gitcmd.StatusRenamed, f.Status)
		assert.Equal(t, 100, f.Similarity)
		require.NotNil(t, f.Src)
		require.NotNil(t, f.Dst)
		assert.Equal(t, "old/path.rb", f.Src.Path)
		assert.Equal(t, "new/path.rba", f.Dst.Path)
		assert.Equal(t, "old/path.rb", f.SrcPath)
		assert.Equal(t, "new/path.rba", f.Path)
	})

	t.Run("leading-zero similarity parses as decimal", func(t *testing.T) {
		t.Parallel()

		input := ":100644 100644 aaa1111 bbb2222 C075\ta.rb\tb.rb\n"
		result := gitcmd.ParseRaw(input, false)

		require.Len(t, result.Files, 1)
		assert.Equal(t, gitcmd.StatusCopied, result.Files[0].Status)
		assert.Equal(t, 75, result.Files[0].Similarity)
	})

	t.Run("added file has no source side", func(t *testing.T) {
		t.Parallel()

		input := ":000000 100644 0000000 bbb2222 A\tlib/new.rb\n2\t0\tlib/new.rb\n"
		result := gitcmd.ParseRaw(input, false)

		require.Len(t, result.Files, 1)
		f := result.Files[0]
		assert.Equal(t, gitcmd.StatusAdded, f.Status)
		assert.Nil(t, f.Src)
		require.NotNil(t, f.Dst)
		assert.Equal(t, "lib/new.rb", f.Dst.Path)
		assert.Equal(t, 2, f.Insertions)
	})

	t.Run("deleted file has no destination side", func(t *testing.T) {
		t.Parallel()

		input := ":100644 000000 aaa1111 0000000 D\tlib/gone.rb\n"
		result := gitcmd.ParseRaw(input, false)

		require.Len(t, result.Files, 1)
		f := result.Files[0]
		assert.Equal(t, gitcmd.StatusDeleted, f.Status)
		require.NotNil(t, f.Src)
		assert.Nil(t, f.Dst)
	})

	t.Run("binary flag comes from the numstat section", func(t *testing.T) {
		t.Parallel()

		input := ":100644 100644 aaa1111 bbb2222 M\timg/logo.png\n-\t-\timg/logo.png\n"
		result := gitcmd.ParseRaw(input, false)

		require.Len(t, result.Files, 1)
		assert.True(t, result.Files[0].Binary)
		assert.Zero(t, result.Files[0].Insertions)
	})

	t.Run("missing numstat entry defaults to zero counts", func(t *testing.T) {
		t.Parallel()

		result := gitcmd.ParseRaw(":100644 100644 aaa1111 bbb2222 M\tlib/foo.rb\n", false)

		require.Len(t, result.Files, 1)
		assert.Zero(t, result.Files[0].Insertions)
		assert.Zero(t, result.Files[0].Deletions)
		assert.False(t, result.Files[0].Binary)
	})

	t.Run("unknown status letters degrade to unknown", func(t *testing.T) {
		t.Parallel()

		result := gitcmd.ParseRaw(":100644 100644 aaa1111 bbb2222 U\tconflict.rb\n", false)

		require.Len(t, result.Files, 1)
		assert.Equal(t, gitcmd.StatusUnknown, result.Files[0].Status)
	})

	t.Run("short raw lines are skipped", func(t *testing.T) {
		t.Parallel()

		result := gitcmd.ParseRaw(":100644 100644\n:broken\n", false)

		assert.Empty(t, result.Files)
	})

	t.Run("dirstat section is honored", func(t *testing.T) {
		t.Parallel()

		input := ":100644 100644 aaa1111 bbb2222 M\tlib/foo.rb\n" +
			"3\t1\tlib/foo.rb\n" +
			" 1 file changed, 3 insertions(+), 1 deletion(-)\n" +
			" 88.0% lib/\n"
		result := gitcmd.ParseRaw(input, true)

		require.NotNil(t, result.Dirstat)
		require.Len(t, result.Dirstat.Entries, 1)
		assert.Equal(t, "lib/", result.Dirstat.Entries[0].Dir)
	})

	t.Run("empty input yields an empty result", func(t *testing.T) {
		t.Parallel()

		result := gitcmd.ParseRaw("", false)

		assert.Zero(t, result.FilesChanged)
		assert.Empty(t, result.Files)
	})
}
