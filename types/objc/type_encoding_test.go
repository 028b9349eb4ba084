package objc

import "testing"

func Test_decodeType(t *testing.T) {
	type args struct {
		encType string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "Test all",
			args: args{
				encType: "^{OutterStruct=(InnerUnion=q{InnerStruct=ii})b1b2b10b1q}",
			},
			want: "struct OutterStruct { union InnerUnion { long long x0; struct InnerStruct { int x0; int x1; } x1; } x0; unsigned int x1:1; unsigned int x2:2; unsigned int x3:10; unsigned int x4:1; long long x5; } *",
		},
		{
			name: "Test array",
			args: args{
				encType: "[2^v]",
			},
			want: "void * x[2]",
		},
		{
			name: "Test nested array",
			args: args{
				encType: "[4[4f]]",
			},
			want: "float x[4][4]",
		},
		{
			name: "Test bitfield",
			args: args{
				encType: "b13",
			},
			want: "unsigned int x:13",
		},
		{
			name: "Test struct",
			args: args{
				encType: "{test=@*i}",
			},
			want: "struct test { id x0; char * x1; int x2; }",
		},
		{
			name: "Test opaque struct",
			args: args{
				encType: "^{__CFString=}",
			},
			want: "struct __CFString *",
		},
		{
			name: "Test union",
			args: args{
				encType: "(?=i)",
			},
			want: "union { int x0; }",
		},
		{
			name: "Test block",
			args: args{
				encType: "@?",
			},
			want: "id /* block */",
		},
		{
			name: "Test block signature",
			args: args{
				encType: `@?<v@?@"NSError">`,
			},
			want: "void (^)(NSError *)",
		},
		{
			name: "Test class name",
			args: args{
				encType: `@"NSString"`,
			},
			want: "NSString *",
		},
		{
			name: "Test protocol",
			args: args{
				encType: `@"<NSCopying>"`,
			},
			want: "id<NSCopying>",
		},
		{
			name: "Test const",
			args: args{
				encType: "r*",
			},
			want: "const char *",
		},
		{
			name: "Test oneway",
			args: args{
				encType: "Vv",
			},
			want: "oneway void",
		},
		{
			name: "Test class and selector",
			args: args{
				encType: "#:",
			},
			want: "Class, SEL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeType(tt.args.encType); got != tt.want {
				t.Errorf("DecodeType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_typeLength(t *testing.T) {
	tests := []struct {
		enc  string
		want int
	}{
		{"v24@0:8", 1},
		{"^^i", 3},
		{"r^v16", 3},
		{`@"NSString"16`, 11},
		{"@?<v@?>8", 7},
		{"@?16", 2},
		{"[2{a=i}]8", 8},
		{"{a={b=i}}", 9},
		{`{YT="pot"i"lady"c}4`, 18},
		{"(u=iq)", 6},
		{"b12i", 3},
		{"[4i", 3},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			if got := typeLength(tt.enc); got != tt.want {
				t.Errorf("typeLength(%q) = %d, want %d", tt.enc, got, tt.want)
			}
		})
	}
}

func Test_declareEncoded(t *testing.T) {
	tests := []struct {
		enc  string
		want string
	}{
		{`@"NSString"`, "NSString *name"},
		{"i", "int name"},
		{"^v", "void *name"},
		{"[8c]", "char name[8]"},
		{"b3", "unsigned int name:3"},
		{"@?<v@?B>", "void (^name)(BOOL)"},
		{"@?", "id /* block */ name"},
	}
	for _, tt := range tests {
		t.Run(tt.enc, func(t *testing.T) {
			if got := declareEncoded(tt.enc, "name"); got != tt.want {
				t.Errorf("declareEncoded(%q) = %q, want %q", tt.enc, got, tt.want)
			}
		})
	}
}
