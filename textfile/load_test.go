package textfile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/snailfish/number"
)

func TestLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	nums, err := Load("testdata/homework.txt")
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(nums) != 10 {
		t.Fatalf("expected 10 numbers, got %d", len(nums))
	}
	if nums[0].String() != "[[[0,[5,8]],[[1,7],[9,6]]],[[4,[1,2]],[[1,4],2]]]" {
		t.Errorf("unexpected first number %s", nums[0])
	}
}

func TestLoadMalformed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Load("testdata/malformed.txt")
	var lerr *LineError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected a line error, got %v", err)
	}
	if lerr.Line != 4 {
		t.Errorf("expected error in line 4, got %d", lerr.Line)
	}
	var perr *number.ParseError
	if !errors.As(err, &perr) || perr.Offset != 4 {
		t.Errorf("expected parse error at offset 4, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "testdata/malformed.txt:4:") {
		t.Errorf("expected error message to start with file:line, is %q", err.Error())
	}
}

func TestLoadNotRegular(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if _, err := Load("testdata"); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	if _, err := Load("testdata/does-not-exist.txt"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestProgress(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	loader := NewLoader()
	defer loader.Close()
	sub, ok := loader.Subscribe(context.Background())
	if !ok {
		t.Fatalf("cannot subscribe to loader")
	}
	nums, err := loader.Read(strings.NewReader("[1,2]\n\n[3,4]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(nums) != 2 {
		t.Fatalf("expected 2 numbers, got %d", len(nums))
	}
	var lines []int
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case msg := <-sub:
			p, ok := msg.(Progress)
			if !ok {
				t.Fatalf("expected Progress message, got %T", msg)
			}
			if p.Done {
				done = true
				if p.Err != nil || p.Line != 3 {
					t.Errorf("expected clean finish after 3 lines, got %d/%v", p.Line, p.Err)
				}
				continue
			}
			lines = append(lines, p.Line)
		case <-timeout:
			t.Fatalf("timeout waiting for progress messages")
		}
	}
	if len(lines) != 2 || lines[0] != 1 || lines[1] != 3 {
		t.Errorf("expected progress for lines 1 and 3, got %v", lines)
	}
}
