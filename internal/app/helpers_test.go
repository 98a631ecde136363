package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/ringgen/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest creates an App writing into a temporary directory. The ring
// name in appConfig is made relative to that directory.
func setupAppTest(t *testing.T, appConfig Config, opts ...Option) (*App, *SafeBuffer) {
	t.Helper()

	if appConfig.Invocation == "" {
		appConfig.Invocation = "ringgen"
	}
	appConfig.LogLevel = "debug"
	appConfig.LogFormat = "text"
	cfg, err := NewConfig(appConfig)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	out := &SafeBuffer{}
	testApp := NewApp(out, cfg, hcl.NewLoader(), opts...)

	t.Cleanup(func() {
		if os.Getenv("RINGGEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), out.String())
		}
	})

	return testApp, out
}
