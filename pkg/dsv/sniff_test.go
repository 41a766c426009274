package dsv_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shapestone/shape-dsv/pkg/dsv"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   dsv.Dialect
	}{
		{
			name:   "comma delimited",
			sample: "a,b,c\n1,2,3\n4,5,6",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ",", HasHeader: true},
		},
		{
			name:   "tab delimited",
			sample: "1\t2\t3\r\n4\t5\t6\r\n",
			want:   dsv.Dialect{LineDelimiter: "\r\n", ColumnDelimiter: "\t"},
		},
		{
			name:   "semicolon delimited",
			sample: "a;b;c\n1;2;3\n4;5;6",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ";", HasHeader: true},
		},
		{
			name:   "pipe delimited",
			sample: "id|email\n1|ada@example.com",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: "|", HasHeader: true},
		},
		{
			name:   "carriage return lines",
			sample: "x,y\r1,2",
			want:   dsv.Dialect{LineDelimiter: "\r", ColumnDelimiter: ",", HasHeader: true},
		},
		{
			name:   "empty sample",
			sample: "",
			want:   dsv.Dialect{LineDelimiter: "\r\n", ColumnDelimiter: ","},
		},
		{
			name:   "single line",
			sample: "a,b,c",
			want:   dsv.Dialect{LineDelimiter: "\r\n", ColumnDelimiter: ","},
		},
		{
			name:   "no delimiter",
			sample: "a\nb",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ",", HasHeader: true},
		},
		{
			name:   "mixed but more commas",
			sample: "a,b,c\n1,2,3\n4;5;6",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ",", HasHeader: true},
		},
		{
			name:   "consistency beats count",
			sample: "a;b;c,d,e,f\n1;2;3\n4;5;6",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ";", HasHeader: true},
		},
		{
			name:   "quoted delimiters ignored",
			sample: "\"a;b;c;d\",5\n\"1;2;3;4\",6",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ","},
		},
		{
			name:   "data first line",
			sample: "2024-01-02,ada@example.com,3.5\n2024-01-03,bob@example.com,4",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ","},
		},
		{
			name:   "title case header",
			sample: "First Name,Last Name\nAda,Lovelace\n",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ",", HasHeader: true},
		},
		{
			name:   "blank lines ignored",
			sample: "a,b\n\n1,2\n",
			want:   dsv.Dialect{LineDelimiter: "\n", ColumnDelimiter: ",", HasHeader: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, dsv.Sniff(tt.sample)); diff != "" {
				t.Errorf("Sniff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDialect_Options(t *testing.T) {
	sample := "city|population\nOslo|709000\nLima|10000000"

	result, err := dsv.Parse(sample, dsv.Sniff(sample).Options()...)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &dsv.Result{
		ColumnNames: []string{"city", "population"},
		Lines:       [][]string{{"Oslo", "709000"}, {"Lima", "10000000"}},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}
