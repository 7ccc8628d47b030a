package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "SVDRegression.TrainAndPredict",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "errest: SVDRegression.TrainAndPredict: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "GRNN.TrainAndPredict",
			kind:     "empty training table",
			err:      nil,
			wantMsg:  "errest: GRNN.TrainAndPredict: empty training table",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("TrainAndPredict", 3, 4, 1)

	want := "errest: TrainAndPredict: dimension mismatch on axis 1 (columns). Expected 3, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("SVDRegression", "Coefficients")

	want := "errest: SVDRegression: this model is not fitted yet. Call TrainAndPredict() before using Coefficients()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("nboot", "must be positive", 0)

	want := "errest: validation failed for parameter 'nboot': must be positive (got: 0)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Fatal("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "nboot" {
		t.Errorf("ParamName = %v, want nboot", valErr.ParamName)
	}
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	var valErr *ValidationError
	if !As(NewValidationError("n", "must be at least 2", 1), &valErr) {
		t.Fatal("Error should be castable to *ValidationError")
	}
	logger.Error().EmbedObject(valErr).Msg("rejected")

	out := buf.String()
	for _, want := range []string{`"param_name":"n"`, `"type":"ValidationError"`, `"message":"rejected"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestWarn(t *testing.T) {
	var got []error
	prev := SetWarningHandler(func(w error) {
		got = append(got, w)
	})
	defer SetWarningHandler(prev)

	Warn(NewUndefinedMetricWarning("E0", "no out-of-bag cases", 0))

	if len(got) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(got))
	}
	want := "'E0' is ill-defined and being set to 0.000000 due to no out-of-bag cases."
	if got[0].Error() != want {
		t.Errorf("Error() = %v, want %v", got[0].Error(), want)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("predict", []float64{1, -1, 0.5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := CheckNumericalStability("predict", []float64{1, math.NaN(), math.Inf(1)})
	var numErr *NumericalInstabilityError
	if !As(err, &numErr) {
		t.Fatalf("expected NumericalInstabilityError, got %T", err)
	}
	if numErr.Iteration != 1 {
		t.Errorf("Iteration = %d, want 1", numErr.Iteration)
	}
	if len(numErr.Values) != 2 {
		t.Errorf("len(Values) = %d, want 2", len(numErr.Values))
	}
}

func TestWrapf(t *testing.T) {
	// フォーマット付きラップ
	wrapped := Wrapf(ErrEmptyData, "in %s: replication %d", "E0", 5)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}

	expectedMsg := "in E0: replication 5"
	if !strings.Contains(wrapped.Error(), expectedMsg) {
		t.Errorf("Expected wrapped error to contain %q", expectedMsg)
	}
}

func TestErrorChaining(t *testing.T) {
	// エラーチェーンの作成
	err1 := fmt.Errorf("base error")
	err2 := Wrap(err1, "wrapped once")
	err3 := NewModelError("Operation", "failed", err2)

	if !strings.Contains(err3.Error(), "base error") {
		t.Error("Expected error chain to contain base error")
	}
	if !Is(err3, err1) {
		t.Error("Expected Is(err3, err1) to be true")
	}

	// スタックトレースの確認（詳細表示）
	formatted := fmt.Sprintf("%+v", err3)
	if !strings.Contains(formatted, "errors_test.go") {
		t.Error("Expected detailed error to contain stack trace")
	}
}
