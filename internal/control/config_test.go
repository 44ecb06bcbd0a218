package control

import "testing"

func Test_ParseInitArg_Applies_Defaults_When_Fields_Omitted(t *testing.T) {
	t.Parallel()

	arg, err := ParseInitArg([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.Size != 0 || arg.Bucket != 0 {
		t.Fatalf("expected zero-value defaults, got %+v", arg)
	}
}

func Test_ParseInitArg_Tolerates_Comments_And_Trailing_Commas(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
		// table shape
		"size": 2048,
		"bucket": 4,
	}`)

	arg, err := ParseInitArg(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if arg.Size != 2048 || arg.Bucket != 4 {
		t.Fatalf("got %+v, want size=2048 bucket=4", arg)
	}
}

func Test_ParseInitArg_Returns_Malformed_When_Not_JSON(t *testing.T) {
	t.Parallel()

	_, err := ParseInitArg([]byte(`not json at all {{{`))
	if err == nil {
		t.Fatalf("expected error")
	}
}
