package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetLogger restores the package defaults between tests.
func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug(t *testing.T) {
	t.Run("prints when verbose", func(t *testing.T) {
		defer resetLogger()

		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(true)

		Debug("composing %q", "Learn Guitar Fast")

		assert.Equal(t, "[DEBUG] composing \"Learn Guitar Fast\"\n", buf.String())
	})

	t.Run("silent otherwise", func(t *testing.T) {
		defer resetLogger()

		var buf bytes.Buffer
		SetOutput(&buf)
		SetVerbose(false)

		Debug("composing")

		assert.Zero(t, buf.Len())
	})
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Compose Description")

	assert.Equal(t, "\n=== Compose Description ===\n", buf.String())
}

func TestInfo(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("SEO score %d", 85)

	assert.Equal(t, "[INFO] SEO score 85\n", buf.String())
}

func TestWarn(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("profile unavailable")

	assert.Equal(t, "[WARN] profile unavailable\n", buf.String())
}

func TestConcurrentAccess(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("worker %d", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
