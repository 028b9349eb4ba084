package objc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseProperty(t *testing.T) {
	tests := []struct {
		name    string
		attrs   string
		want    *PropertyAttributes
		wantErr bool
	}{
		{
			name:  "copy string",
			attrs: `T@"NSString",C,N,V_name`,
			want:  &PropertyAttributes{Type: `@"NSString"`, Copy: true, NonAtomic: true, Ivar: "_name"},
		},
		{
			name:  "readonly getter",
			attrs: "TB,R,N,GisEnabled",
			want:  &PropertyAttributes{Type: "B", ReadOnly: true, NonAtomic: true, Getter: "isEnabled"},
		},
		{
			name:  "struct type",
			attrs: "T{CGPoint=dd},N,V_origin",
			want:  &PropertyAttributes{Type: "{CGPoint=dd}", NonAtomic: true, Ivar: "_origin"},
		},
		{
			name:  "weak optional with setter",
			attrs: `T@"<Delegate>",W,N,?,SsetDelegate:`,
			want:  &PropertyAttributes{Type: `@"<Delegate>"`, Weak: true, NonAtomic: true, Optional: true, Setter: "setDelegate:"},
		},
		{
			name:  "dynamic block",
			attrs: "T@?,C,D,N",
			want:  &PropertyAttributes{Type: "@?", Copy: true, Dynamic: true, NonAtomic: true},
		},
		{
			name:    "no type",
			attrs:   "R,N",
			wantErr: true,
		},
		{
			name:    "unknown attribute",
			attrs:   "Ti,X",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProperty(tt.attrs)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProperty() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseProperty() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPropertyDeclaration(t *testing.T) {
	tests := []struct {
		prop Property
		want string
	}{
		{
			prop: Property{Name: "name", EncodedAttributes: `T@"NSString",C,N,V_name`},
			want: "@property (nonatomic, copy) NSString *name;",
		},
		{
			prop: Property{Name: "enabled", EncodedAttributes: "TB,R,N,GisEnabled"},
			want: "@property (nonatomic, readonly, getter=isEnabled) BOOL enabled;",
		},
		{
			prop: Property{Name: "count", EncodedAttributes: "Tq,V_count"},
			want: "@property long long count;",
		},
		{
			prop: Property{Name: "handler", EncodedAttributes: "T@?<v@?q>,C,N"},
			want: "@property (nonatomic, copy) void (^handler)(long long);",
		},
	}
	for _, tt := range tests {
		t.Run(tt.prop.Name, func(t *testing.T) {
			got, err := tt.prop.Declaration()
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Declaration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIvarDeclaration(t *testing.T) {
	tests := []struct {
		ivar Ivar
		want string
	}{
		{Ivar{Name: "_name", Type: `@"NSString"`}, "NSString *_name;"},
		{Ivar{Name: "_flags", Type: "b4"}, "unsigned int _flags:4;"},
		{Ivar{Name: "_buf", Type: "[16C]"}, "unsigned char _buf[16];"},
		{Ivar{Name: "_delegate", Type: "@"}, "id _delegate;"},
	}
	for _, tt := range tests {
		t.Run(tt.ivar.Name, func(t *testing.T) {
			if got := tt.ivar.Declaration(); got != tt.want {
				t.Errorf("Declaration() = %q, want %q", got, tt.want)
			}
		})
	}
}
