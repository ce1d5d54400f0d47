package chain

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/fault"
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Success(10))
	out := c.Result()
	if !out.IsSuccess() || out.Value() != 10 {
		t.Fatalf("expected success with 10, got %v", out)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got %v", out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("boom")
	called := false
	out := Then(Start(ctx, rop.Fail[int](err)), func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	}).Result()

	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected the same 'boom' error, got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThen_PropagateCancel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	out := Then(Start(ctx, rop.Cancelled[int]("op-9")), func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("x")
	}).Result()

	if !out.IsCancelled() || out.Err().Error() != "operation 'op-9' was cancelled" {
		t.Fatalf("expected cancelled 'op-9', got %v", out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on cancel input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_3", nil
	}).Result()
	if !out.IsSuccess() || out.Value() != "val_3" {
		t.Fatalf("expected success 'val_3', got %v", out)
	}

	failed := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	}).Result()
	if !failed.IsFailure() || failed.Err().Error() != "try-error" {
		t.Fatalf("expected failure 'try-error', got %v", failed)
	}
}

func TestMap_And_Ensure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []int
	out := Map(FromValue(ctx, 5).Ensure(func(ctx context.Context, v int) { seen = append(seen, v) }),
		func(ctx context.Context, v int) int { return v + 3 }).Result()

	if out.Value() != 8 {
		t.Fatalf("expected 8, got %v", out)
	}
	if len(seen) != 1 || seen[0] != 5 {
		t.Fatalf("expected Ensure to observe 5, got %v", seen)
	}

	Start(ctx, rop.Fail[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { seen = append(seen, v) })
	if len(seen) != 1 {
		t.Fatalf("Ensure must not run on failure")
	}
}

func TestEnsureError_Recover_OrElse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var logged error
	out := Start(ctx, rop.Fail[int](fault.NotFound("User", "1"))).
		EnsureError(func(ctx context.Context, err error) { logged = err }).
		Recover(func(ctx context.Context, err error) rop.Result[int] {
			if fault.IsNotFound(err) {
				return rop.Success(0)
			}
			return rop.Fail[int](err)
		}).Result()

	if out.Value() != 0 {
		t.Fatalf("expected recovered 0, got %v", out)
	}
	if !fault.IsNotFound(logged) {
		t.Fatalf("expected EnsureError to see the not found fault, got %v", logged)
	}

	alt := Start(ctx, rop.Fail[int](errors.New("x"))).OrElse(rop.Success(1)).Result()
	if alt.Value() != 1 {
		t.Fatalf("expected alternative 1, got %v", alt)
	}
}

func TestThenAsync(t *testing.T) {
	t.Parallel()

	out := ThenAsync(FromValue(context.Background(), 2), func(ctx context.Context, v int) rop.Result[int] {
		return rop.Success(v * 10)
	}).Result()
	if out.Value() != 20 {
		t.Fatalf("expected 20, got %v", out)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	slow := ThenAsync(FromValue(ctx, 2), func(ctx context.Context, v int) rop.Result[int] {
		<-ctx.Done()
		time.Sleep(10 * time.Millisecond)
		return rop.Success(v)
	}).Result()
	if !slow.IsCancelled() {
		t.Fatalf("expected cancelled result, got %v", slow)
	}
}

func TestFinally_And_Match(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	reduce := func(c *Chain[int]) int {
		return Finally(c,
			func(ctx context.Context, v int) int { return v + 100 },
			func(ctx context.Context, err error) int { return -1 },
			func(ctx context.Context, err error) int { return -2 })
	}

	if got := reduce(FromValue(ctx, 3)); got != 103 {
		t.Fatalf("expected 103, got %d", got)
	}
	if got := reduce(Start(ctx, rop.Fail[int](errors.New("x")))); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := reduce(Start(ctx, rop.Cancelled[int](""))); got != -2 {
		t.Fatalf("expected -2, got %d", got)
	}

	msg := Match(FromValue(ctx, "a"),
		func(ctx context.Context, s string) string { return "ok:" + s },
		func(ctx context.Context, err error) string { return "err" })
	if msg != "ok:a" {
		t.Fatalf("expected ok:a, got %s", msg)
	}
}

func TestChain_ParseExtractProcess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	run := func(raw string) rop.Result[string] {
		parsed := FromThrowable(ctx, func(ctx context.Context) (map[string]any, error) {
			var m map[string]any
			return m, json.Unmarshal([]byte(raw), &m)
		})
		name := Then(parsed, func(ctx context.Context, m map[string]any) rop.Result[string] {
			s, ok := m["name"].(string)
			if !ok {
				return rop.Fail[string](fault.NotFound("field", "name"))
			}
			return rop.Success(s)
		})
		return Then(name, func(ctx context.Context, s string) rop.Result[string] {
			up := strings.ToUpper(s)
			if len(up) <= 3 {
				return rop.Fail[string](fault.Validation("name too short"))
			}
			return rop.Success(up)
		}).Result()
	}

	if got := run(`{"name":"John"}`); got.Value() != "JOHN" {
		t.Fatalf("expected JOHN, got %v", got)
	}
	if got := run(`{"name":"Jo"}`); !fault.IsValidation(got.Err()) {
		t.Fatalf("expected validation fault, got %v", got)
	}
	if got := run(`{"nope":1}`); !fault.IsNotFound(got.Err()) {
		t.Fatalf("expected not found fault, got %v", got)
	}
}
