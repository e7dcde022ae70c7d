package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestControlErrorString(t *testing.T) {
	err := &ControlError{
		Op:   "view.SvPalette.Update",
		Kind: KindDisposed,
		Err:  ErrAlreadyDisposed,
	}
	got := err.Error()
	want := "view.SvPalette.Update [disposed]: already disposed"
	if got != want {
		t.Errorf("ControlError.Error() = %q, want %q", got, want)
	}
}

func TestAlreadyDisposedUnwraps(t *testing.T) {
	err := fmt.Errorf("render: %w", AlreadyDisposed("view.Slider.Update"))
	if !stderrors.Is(err, ErrAlreadyDisposed) {
		t.Error("expected wrapped error to match ErrAlreadyDisposed")
	}
	if !IsDisposed(err) {
		t.Error("IsDisposed = false, want true")
	}
	var ce *ControlError
	if !stderrors.As(err, &ce) {
		t.Fatal("expected errors.As to find *ControlError")
	}
	if ce.Kind != KindDisposed {
		t.Errorf("Kind = %v, want %v", ce.Kind, KindDisposed)
	}
	if ce.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestIsDisposedUnrelated(t *testing.T) {
	if IsDisposed(stderrors.New("boom")) {
		t.Error("IsDisposed(unrelated) = true, want false")
	}
	if IsDisposed(nil) {
		t.Error("IsDisposed(nil) = true, want false")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindDisposed, "disposed"},
		{KindParsing, "parsing"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "watch.reload"
	if got, want := err.Error(), "panic in watch.reload: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestParseErrorString(t *testing.T) {
	err := &ParseError{Text: "abc", DataType: "number"}
	if got, want := err.Error(), `failed to parse number from "abc"`; got != want {
		t.Errorf("ParseError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *ControlError
	handler := &testHandler{
		onError: func(err *ControlError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&ControlError{
		Op:   "test.op",
		Kind: KindRender,
		Err:  stderrors.New("no context"),
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	h := &LogHandler{Logger: &logger}

	h.HandleError(&ControlError{Op: "view.SvPalette.Update", Kind: KindRender, Err: stderrors.New("no context")})
	if buf.Len() != 0 {
		t.Errorf("render errors should log at debug level, got %q", buf.String())
	}

	h.HandleError(AlreadyDisposed("view.Slider.Update"))
	out := buf.String()
	for _, want := range []string{`"level":"error"`, `"op":"view.Slider.Update"`, `"kind":"disposed"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestLogHandlerVerbosePanic(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := &LogHandler{Logger: &logger, Verbose: true}

	h.HandlePanic(&PanicError{Op: "watch.reload", Value: "boom", StackTrace: "frame"})
	out := buf.String()
	for _, want := range []string{`"op":"watch.reload"`, `"value":"boom"`, `"stack":"frame"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogOptions{Level: "WARN", Writer: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record should be written")
	}

	if _, err := NewLogger(LogOptions{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

type testHandler struct {
	onError func(*ControlError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *ControlError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
