package todo

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestEncode(t *testing.T) {
	l := NewList(
		Task{Content: "Buy milk"},
		Task{Content: "Done thing", Completed: true},
		Task{Content: "T starts with T"},
	)
	// NewList trims; force untrimmed content to check Encode trims as well.
	l.tasks[0].Content = "  Buy milk  "

	var buf bytes.Buffer
	if err := Encode(&buf, l.All()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "FBuy milk\nTDone thing\nFT starts with T"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestEncode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, (&List{}).All()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestDecodeLine(t *testing.T) {
	tests := []struct {
		line    string
		want    Task
		wantErr bool
	}{
		{line: "FBuy milk", want: Task{Content: "Buy milk"}},
		{line: "TBuy milk", want: Task{Content: "Buy milk", Completed: true}},
		{line: "TBuy milk\r", want: Task{Content: "Buy milk", Completed: true}},
		{line: "F", want: Task{}},
		{line: "F  spaced ", want: Task{Content: "  spaced "}},
		{line: "", wantErr: true},
		{line: "XBuy milk", wantErr: true},
		{line: "tBuy milk", wantErr: true},
		{line: "F\xff\xfe", wantErr: true},
	}

	for _, tt := range tests {
		got, err := DecodeLine(tt.line)
		if tt.wantErr {
			if err == nil {
				t.Errorf("DecodeLine(%q): expected error, got %+v", tt.line, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeLine(%q): unexpected error: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DecodeLine(%q): expected %+v, got %+v", tt.line, tt.want, got)
		}
	}
}

func TestDecode_SkipsMalformedLines(t *testing.T) {
	input := "FBuy milk\n\nbogus\nTWalk dog\nF\xffbad\nFLast"

	tasks, skipped, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skipped != 3 {
		t.Errorf("expected 3 skipped lines, got %d", skipped)
	}
	want := []Task{
		{Content: "Buy milk"},
		{Content: "Walk dog", Completed: true},
		{Content: "Last"},
	}
	if !slices.Equal(tasks, want) {
		t.Errorf("expected %+v, got %+v", want, tasks)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := []Task{
		{Content: "Buy milk"},
		{Content: "Tidy T and F", Completed: true},
		{Content: "ünïcödé ☐ 🗹"},
		{Content: "", Completed: true},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, NewList(want...).All()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, skipped, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if skipped != 0 {
		t.Errorf("expected no skipped lines, got %d", skipped)
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestDecode_ReaderError(t *testing.T) {
	errRead := errors.New("device gone")
	r := io.MultiReader(strings.NewReader("FSaved\nFPart"), iotest.ErrReader(errRead))

	tasks, _, err := Decode(r)
	if !errors.Is(err, errRead) {
		t.Fatalf("expected %v, got %v", errRead, err)
	}
	if len(tasks) != 1 || tasks[0].Content != "Saved" {
		t.Errorf("expected the lines read before the failure, got %+v", tasks)
	}
}
