package types

import "testing"

func TestEqualsStructural(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"int==int", TInt(), TInt(), true},
		{"int!=float", TInt(), TFloat(), false},
		{"guid same kind", TGuid(GuidEntity), TGuid(GuidEntity), true},
		{"guid different kind", TGuid(GuidEntity), TGuid(GuidFaction), false},
		{"list same elem", TList(TInt()), TList(TInt()), true},
		{"list different elem", TList(TInt()), TList(TFloat()), false},
		{"map same", TMap(TString(), TInt()), TMap(TString(), TInt()), true},
		{"map different value", TMap(TString(), TInt()), TMap(TString(), TFloat()), false},
		{"tuple same", TTuple(TInt(), TBool()), TTuple(TInt(), TBool()), true},
		{"tuple different arity", TTuple(TInt()), TTuple(TInt(), TBool()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equals(tt.b); got != tt.want {
				t.Fatalf("%s.Equals(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{TInt(), "Int"},
		{TGuid(GuidFaction), "Guid<Faction>"},
		{TList(TInt()), "List<Int>"},
		{TMap(TString(), TInt()), "Map<String, Int>"},
		{TTuple(TInt(), TBool()), "(Int, Bool)"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !TInt().IsNumeric() || !TFloat().IsNumeric() {
		t.Fatalf("expected Int and Float to be numeric")
	}
	if TBool().IsNumeric() || TString().IsNumeric() {
		t.Fatalf("expected Bool and String to not be numeric")
	}
}
