package pb

import (
	"testing"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func sampleSnapshot() *WorldSnapshot {
	return &WorldSnapshot{
		Tick:  12,
		State: RunState_RUN_STATE_PAUSED,
		Star:  &BodyState{Id: 1, Kind: BodyKind_BODY_KIND_STAR, Position: &Vector{}, Mass: 10000, Radius: 15, Color: 0xffff00ff},
		Particles: []*BodyState{
			{Id: 2, Kind: BodyKind_BODY_KIND_PARTICLE, Position: &Vector{X: 60, Y: -2}, Velocity: &Vector{X: 0.1, Y: 10}, Mass: 1.1, Radius: 1, Group: 3, Age: 40},
		},
		Planets: []*BodyState{
			{Id: 9, Kind: BodyKind_BODY_KIND_PLANET, Position: &Vector{X: -80, Y: 5}, Mass: 21, Radius: 3},
		},
		Stats:         &Stats{ActiveCount: 1, PlanetCount: 1, TotalMass: 22.1, LargestMass: 21, MeanMass: 11.05, Merges: 20, Promotions: 1},
		RunId:         "run",
		TicksPerFrame: 2,
	}
}

func TestWorldSnapshot_Wire(t *testing.T) {
	want := sampleSnapshot()
	data, err := proto.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got := &WorldSnapshot{}
	if err := proto.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !proto.Equal(got, want) {
		t.Errorf("decoded snapshot differs:\n got %v\nwant %v", got, want)
	}
}

func TestWorldSnapshot_JSON(t *testing.T) {
	want := sampleSnapshot()
	data, err := protojson.Marshal(want)
	if err != nil {
		t.Fatalf("protojson.Marshal() error = %v", err)
	}
	got := &WorldSnapshot{}
	if err := protojson.Unmarshal(data, got); err != nil {
		t.Fatalf("protojson.Unmarshal() error = %v", err)
	}
	if !proto.Equal(got, want) {
		t.Errorf("JSON round trip differs:\n got %v\nwant %v", got, want)
	}
}

func TestIntent_EnumNames(t *testing.T) {
	tests := []struct {
		kind IntentKind
		want string
	}{
		{IntentKind_INTENT_KIND_PAUSE, "INTENT_KIND_PAUSE"},
		{IntentKind_INTENT_KIND_INJECT, "INTENT_KIND_INJECT"},
		{IntentKind_INTENT_KIND_SLOW_DOWN, "INTENT_KIND_SLOW_DOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}
