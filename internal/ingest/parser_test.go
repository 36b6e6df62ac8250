package ingest

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain fields",
			line: "Milk,Groceries,50",
			want: []string{"Milk", "Groceries", "50"},
		},
		{
			name: "quoted fields stripped",
			line: `"Milk","Groceries",50`,
			want: []string{"Milk", "Groceries", "50"},
		},
		{
			name: "comma inside quotes preserved",
			line: `"Acme, Inc.","Groceries",10,1,10,"2023-01-01"`,
			want: []string{"Acme, Inc.", "Groceries", "10", "1", "10", "2023-01-01"},
		},
		{
			name: "backslash-escaped quote is literal",
			line: `"say \"hi\"",b`,
			want: []string{`say \"hi\"`, "b"},
		},
		{
			name: "empty line yields one empty field",
			line: "",
			want: []string{""},
		},
		{
			name: "trailing comma yields trailing empty field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "empty fields between commas",
			line: "a,,c",
			want: []string{"a", "", "c"},
		},
		{
			name: "unbalanced quote swallows the rest without error",
			line: `"open,never,closed`,
			want: []string{`"open,never,closed`},
		},
		{
			name: "quotes only stripped when surrounding",
			line: `ab,"x`,
			want: []string{"ab", `"x`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}
