package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/desertthunder/jukebox/internal/models"
	"github.com/desertthunder/jukebox/internal/shared"
	tu "github.com/desertthunder/jukebox/internal/testing"
	"github.com/urfave/cli/v3"
)

func newTestRunner(svc *tu.MockService) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Service: svc,
		Logger:  shared.NewLogger(&bytes.Buffer{}),
		Output:  output,
	})
	return runner, output
}

func runCommand(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	root := &cli.Command{
		Name:     "jukebox",
		Commands: runner.register(),
	}
	return root.Run(context.Background(), append([]string{"jukebox"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			svc := &tu.MockService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Service:    svc,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.svc != svc {
				t.Error("expected service to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{HTTPClient: nil})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			if err := runner.writeJSON(data, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "hello world" {
				t.Errorf("expected 'hello world', got %q", output.String())
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})
}

func TestQueueCommands(t *testing.T) {
	catalog := models.Catalog{
		"h1": {Name: "Song One", Duration: 185},
		"h2": {Name: "Song Two", Duration: 42},
	}

	t.Run("list prints queue rows and status", func(t *testing.T) {
		svc := &tu.MockService{
			CatalogValue: catalog,
			QueueValue:   models.Queue{"h1", "h2"},
			CurrentValue: models.Status{Hash: "h1", Position: 42, Duration: 185},
		}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "queue", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "Song One") {
			t.Errorf("expected first track label, got %q", result)
		}
		if !strings.Contains(result, "03:05") {
			t.Errorf("expected formatted duration, got %q", result)
		}
		if !strings.Contains(result, "00:42") {
			t.Errorf("expected formatted position, got %q", result)
		}
	})

	t.Run("list with empty queue", func(t *testing.T) {
		svc := &tu.MockService{CatalogValue: catalog}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "queue", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "queue is empty") {
			t.Errorf("expected empty queue notice, got %q", output.String())
		}
	})

	t.Run("add dispatches enqueue then refreshes the view", func(t *testing.T) {
		svc := &tu.MockService{CatalogValue: catalog}
		runner, _ := newTestRunner(svc)

		if err := runCommand(t, runner, "queue", "add", "h1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"catalog", "enqueue:h1", "queue", "current"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
	})

	t.Run("add without hash fails", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, _ := newTestRunner(svc)

		err := runCommand(t, runner, "queue", "add")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected missing argument error, got %v", err)
		}
	})

	t.Run("rm dispatches delete then refreshes the view", func(t *testing.T) {
		svc := &tu.MockService{CatalogValue: catalog}
		runner, _ := newTestRunner(svc)

		if err := runCommand(t, runner, "queue", "rm", "h2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"catalog", "delete:h2", "queue", "current"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
	})

	t.Run("move sends both indices verbatim", func(t *testing.T) {
		svc := &tu.MockService{CatalogValue: catalog, QueueValue: models.Queue{"h1", "h2"}}
		runner, _ := newTestRunner(svc)

		if err := runCommand(t, runner, "queue", "move", "0", "2"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"catalog", "reorder:0:2", "queue", "current"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
	})

	t.Run("move rejects non-numeric positions", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, _ := newTestRunner(svc)

		err := runCommand(t, runner, "queue", "move", "first", "2")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected invalid argument error, got %v", err)
		}
		if len(svc.CallLog()) != 0 {
			t.Errorf("expected no dispatch, got %v", svc.CallLog())
		}
	})

	t.Run("list surfaces view refresh failure", func(t *testing.T) {
		svc := &tu.MockService{Err: errors.New("server down")}
		runner, _ := newTestRunner(svc)

		err := runCommand(t, runner, "queue", "list")
		if err == nil {
			t.Fatal("expected error when refresh fails")
		}
	})
}

func TestTransportCommands(t *testing.T) {
	t.Run("now prints the status line", func(t *testing.T) {
		svc := &tu.MockService{
			CatalogValue: models.Catalog{"h1": {Name: "Song One", Duration: 185}},
			CurrentValue: models.Status{Hash: "h1", Position: 42, Duration: 185},
		}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "player", "now"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		result := output.String()
		if !strings.Contains(result, "00:42") {
			t.Errorf("expected position clock, got %q", result)
		}
		if !strings.Contains(result, "Song One") {
			t.Errorf("expected track label, got %q", result)
		}
	})

	t.Run("now with nothing playing", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "player", "now"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "nothing playing") {
			t.Errorf("expected idle notice, got %q", output.String())
		}
	})

	t.Run("play dispatches then refreshes the view", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, _ := newTestRunner(svc)

		if err := runCommand(t, runner, "player", "play"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"catalog", "play", "queue", "current"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
	})

	t.Run("pause dispatches then refreshes the view", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, _ := newTestRunner(svc)

		if err := runCommand(t, runner, "player", "pause"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"catalog", "pause", "queue", "current"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
	})
}

func TestAutoplayCommands(t *testing.T) {
	t.Run("get prints the flag", func(t *testing.T) {
		svc := &tu.MockService{AutoplayValue: true}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "autoplay", "get"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "autoplay: true") {
			t.Errorf("expected autoplay flag, got %q", output.String())
		}
	})

	t.Run("set writes the flag without a view refresh", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, output := newTestRunner(svc)

		if err := runCommand(t, runner, "autoplay", "set", "false"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		expected := []string{"autoplay_set:false"}
		if !reflect.DeepEqual(svc.CallLog(), expected) {
			t.Errorf("expected call log %v, got %v", expected, svc.CallLog())
		}
		if !strings.Contains(output.String(), "autoplay: false") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})

	t.Run("set rejects non-boolean values", func(t *testing.T) {
		svc := &tu.MockService{}
		runner, _ := newTestRunner(svc)

		err := runCommand(t, runner, "autoplay", "set", "maybe")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected invalid argument error, got %v", err)
		}
		if len(svc.CallLog()) != 0 {
			t.Errorf("expected no dispatch, got %v", svc.CallLog())
		}
	})
}
