package gitcmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/gitcmd"
)

func TestUnescapePath(t *testing.T) {
	t.Parallel()

	t.Run("unquoted tokens pass through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "lib/foo.rb", gitcmd.UnescapePath("lib/foo.rb"))
		assert.Equal(t, "", gitcmd.UnescapePath(""))
	})

	t.Run("decodes octal escapes as UTF-8 bytes", func(t *testing.T) {
		t.Parallel()

		// \302\265 is the UTF-8 encoding of the micro sign.
		assert.Equal(t, "file_µ.rb", gitcmd.UnescapePath(`"file_\302\265.rb"`))
	})

	t.Run("decodes named escapes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\tb", gitcmd.UnescapePath(`"a\tb"`))
		assert.Equal(t, "a\nb", gitcmd.UnescapePath(`"a\nb"`))
		assert.Equal(t, `a\b"c'd`, gitcmd.UnescapePath(`"a\\b\"c\'d"`))
		assert.Equal(t, "bell\a", gitcmd.UnescapePath(`"bell\a"`))
		assert.Equal(t, "esc\x1b", gitcmd.UnescapePath(`"esc\e"`))
	})

	t.Run("quotes without escapes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain path", gitcmd.UnescapePath(`"plain path"`))
	})
}

func TestSplitRenamePath(t *testing.T) {
	t.Parallel()

	t.Run("brace form splits around the changed segment", func(t *testing.T) {
		t.Parallel()

		dst, src := gitcmd.SplitRenamePath("old_dir/{a => b}/file.rb")
		assert.Equal(t, "old_dir/b/file.rb", dst)
		assert.Equal(t, "old_dir/a/file.rb", src)
	})

	t.Run("brace form at the end of the path", func(t *testing.T) {
		t.Parallel()

		dst, src := gitcmd.SplitRenamePath("lib/commands/{base.rb => abstract.rb}")
		assert.Equal(t, "lib/commands/abstract.rb", dst)
		assert.Equal(t, "lib/commands/base.rb", src)
	})

	t.Run("simple form splits on the separator", func(t *testing.T) {
		t.Parallel()

		dst, src := gitcmd.SplitRenamePath("old/path.rb => new/path.rb")
		assert.Equal(t, "new/path.rb", dst)
		assert.Equal(t, "old/path.rb", src)
	})

	t.Run("no rename marker returns a single path", func(t *testing.T) {
		t.Parallel()

		dst, src := gitcmd.SplitRenamePath("lib/foo.rb")
		assert.Equal(t, "lib/foo.rb", dst)
		assert.Empty(t, src)
	})
}
