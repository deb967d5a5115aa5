package queryline

import "testing"

func TestParseLineBasic(t *testing.T) {
	q, err := ParseLine(`x\.txt -k d -m 10 -t 4`)
	if err != nil {
		t.Fatal(err)
	}
	if q.Pattern != `x\.txt` {
		t.Errorf("Pattern = %q", q.Pattern)
	}
	if q.Kind != KindDir {
		t.Errorf("Kind = %v, want KindDir", q.Kind)
	}
	if q.MaxResults != 10 || q.Threads != 4 {
		t.Errorf("MaxResults/Threads = %d/%d", q.MaxResults, q.Threads)
	}
}

func TestParseLineQuotedRoot(t *testing.T) {
	q, err := ParseLine(`foo "a root with spaces" other/root`)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Roots) != 2 || q.Roots[0] != "a root with spaces" {
		t.Errorf("Roots = %#v", q.Roots)
	}
}

func TestParseLineRequiresPattern(t *testing.T) {
	if _, err := ParseLine("-H"); err == nil {
		t.Fatal("expected error for missing pattern")
	}
}

func TestParseLineUnknownKind(t *testing.T) {
	if _, err := ParseLine("foo -k bogus"); err == nil {
		t.Fatal("expected error for unknown --kind value")
	}
}

func TestSmartCaseCompilation(t *testing.T) {
	q, err := ParseLine("readme")
	if err != nil {
		t.Fatal(err)
	}
	cfg, re, err := q.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CaseSensitive {
		t.Error("all-lowercase pattern should be case-insensitive by default")
	}
	if !re.MatchString("readme.md") {
		t.Error("case-insensitive regex should match lowercase readme.md")
	}

	q2, err := ParseLine("README")
	if err != nil {
		t.Fatal(err)
	}
	cfg2, re2, err := q2.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg2.CaseSensitive {
		t.Error("smart-case should make an uppercase pattern case-sensitive")
	}
	if re2.MatchString("readme.md") {
		t.Error("smart-case should make an uppercase pattern case-sensitive")
	}
	if !re2.MatchString("README.md") {
		t.Error("smart-case regex should still match the exact-case file")
	}
}

func TestDefaultThreadsAtLeastOne(t *testing.T) {
	q, err := ParseLine("foo")
	if err != nil {
		t.Fatal(err)
	}
	cfg, _, err := q.ToConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads < 1 {
		t.Errorf("Threads = %d, want >= 1", cfg.Threads)
	}
}
