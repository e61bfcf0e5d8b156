package logging

import "testing"

func TestLoggerReturnsSharedInstance(t *testing.T) {
	first := Logger()
	second := Logger()
	if first == nil {
		t.Fatal("expected non-nil logger")
	}
	if first != second {
		t.Fatal("expected Logger to return the same instance")
	}
}

func TestSugarSharesCore(t *testing.T) {
	sugar := Sugar()
	if sugar == nil {
		t.Fatal("expected non-nil sugared logger")
	}
	if sugar.Desugar().Core() != Logger().Core() {
		t.Fatal("expected sugared logger to share the base core")
	}
}

func TestErrReportsNoInitFailure(t *testing.T) {
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
}
