package commands

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/neuraplan/internal/model"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add read chapter 3", TypeAdd},
		{"move ab12 2026-02-20", TypeMove},
		{"mv ab12 +1", TypeMove},
		{"done ab12", TypeDone},
		{"toggle ab12", TypeDone},
		{"delete ab12", TypeDelete},
		{"rm ab12", TypeDelete},
		{"week 3", TypeWeek},
		{"/goto ab12", TypeGoto},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddTokens(t *testing.T) {
	cmd, err := Parse("add mock interview @2026-02-20 #dsa !high ~19:00-20:00")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	a := cmd.Add
	if a.Title != "mock interview" {
		t.Fatalf("unexpected title: %q", a.Title)
	}
	if a.Date != "2026-02-20" || a.Domain != model.DomainDSA || a.Priority != model.PriorityHigh || a.Slot != "19:00-20:00" {
		t.Fatalf("unexpected args: %+v", a)
	}
}

func TestParseAddDefaults(t *testing.T) {
	cmd, err := Parse("add sketch @today")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Date != "" || cmd.Add.Domain != model.DomainCoding || cmd.Add.Priority != model.PriorityMedium {
		t.Fatalf("unexpected defaults: %+v", cmd.Add)
	}
}

func TestParseRelativeDayWords(t *testing.T) {
	cmd, err := Parse("add sketch @Tomorrow")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Date != "tomorrow" {
		t.Fatalf("unexpected date: %q", cmd.Add.Date)
	}

	cmd, err = Parse("move ab12 yesterday")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Move.Relative() || cmd.Move.Date != "yesterday" {
		t.Fatalf("unexpected move args: %+v", cmd.Move)
	}
}

func TestParseInvalidArguments(t *testing.T) {
	cases := []string{
		"add",
		"add #dsa",
		"add x @2026-02-30",
		"add x #astrology",
		"add x !urgent",
		"move ab12",
		"move ab12 someday",
		"add x @someday",
		"move ab12 +x",
		"done",
		"week 0",
		"week 7",
		"week",
	}
	for _, in := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
			t.Fatalf("parse %q: expected invalid argument, got %v", in, err)
		}
	}
}

func TestParseMoveRelative(t *testing.T) {
	cmd, err := Parse("move ab12 -2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !cmd.Move.Relative() || cmd.Move.Shift != -2 {
		t.Fatalf("unexpected move args: %+v", cmd.Move)
	}

	cmd, err = Parse("move ab12 2026-03-01")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Move.Relative() || cmd.Move.Date != "2026-03-01" {
		t.Fatalf("unexpected move args: %+v", cmd.Move)
	}
}

func TestParseWeek(t *testing.T) {
	cmd, err := Parse("week 6")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Week.Week != 5 || cmd.Week.Relative {
		t.Fatalf("unexpected week args: %+v", cmd.Week)
	}
	cmd, err = Parse("week prev")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !cmd.Week.Relative || cmd.Week.Delta != -1 {
		t.Fatalf("unexpected week args: %+v", cmd.Week)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "/"} {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != ErrCodeEmptyInput {
			t.Fatalf("parse %q: expected empty input, got %v", in, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done ab12")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a TargetArgs) (Result, error) {
			called = true
			if a.Target != "ab12" {
				t.Fatalf("unexpected target: %q", a.Target)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("week 2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
