package stego

import (
	"testing"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		width, height int
		want          int
	}{
		{100, 100, 3750},
		{1, 1, 0},
		{16, 16, 96},
		{1920, 1080, 777600},
		{0, 100, 0},
		{100, 0, 0},
		{-5, 100, 0},
	}
	for _, tt := range tests {
		if got := Capacity(tt.width, tt.height); got != tt.want {
			t.Errorf("Capacity(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestPlanCapacity_Sufficient(t *testing.T) {
	d := PlanCapacity(100, 100, 2000, false)
	if d.Verdict != Sufficient {
		t.Fatalf("Verdict = %v, want Sufficient", d.Verdict)
	}
	if d.Capacity != 3750 {
		t.Errorf("Capacity = %d, want 3750", d.Capacity)
	}
	if d.Required != 3024 {
		t.Errorf("Required = %d, want 3024", d.Required)
	}
	if d.TargetWidth != 0 || d.TargetHeight != 0 {
		t.Errorf("target dimensions %dx%d set on a sufficient carrier", d.TargetWidth, d.TargetHeight)
	}
}

func TestPlanCapacity_Infeasible(t *testing.T) {
	d := PlanCapacity(100, 100, 3000, false)
	if d.Verdict != Infeasible {
		t.Fatalf("Verdict = %v, want Infeasible", d.Verdict)
	}
	if d.Capacity != 3750 {
		t.Errorf("Capacity = %d, want 3750", d.Capacity)
	}
	if d.Required != 4024 {
		t.Errorf("Required = %d, want 4024", d.Required)
	}
}

func TestPlanCapacity_RequiresResize(t *testing.T) {
	d := PlanCapacity(100, 100, 3000, true)
	if d.Verdict != RequiresResize {
		t.Fatalf("Verdict = %v, want RequiresResize", d.Verdict)
	}
	if d.TargetWidth != 106 || d.TargetHeight != 106 {
		t.Errorf("target = %dx%d, want 106x106", d.TargetWidth, d.TargetHeight)
	}
	if got := Capacity(d.TargetWidth, d.TargetHeight); got < d.Required {
		t.Errorf("post-resize capacity %d < required %d", got, d.Required)
	}
}

func TestPlanCapacity_ZeroArea(t *testing.T) {
	dims := [][2]int{{0, 100}, {100, 0}, {0, 0}}
	for _, allow := range []bool{false, true} {
		for _, d := range dims {
			got := PlanCapacity(d[0], d[1], 10, allow)
			if got.Verdict != Infeasible {
				t.Errorf("PlanCapacity(%d, %d, 10, %v).Verdict = %v, want Infeasible",
					d[0], d[1], allow, got.Verdict)
			}
		}
	}
}

func TestPlanCapacity_ZeroPayloadStillPaysOverhead(t *testing.T) {
	// A 10x10 image holds 37 bytes, well under the fixed overhead.
	d := PlanCapacity(10, 10, 0, false)
	if d.Verdict != Infeasible {
		t.Fatalf("Verdict = %v, want Infeasible", d.Verdict)
	}
	if d.Required != Overhead {
		t.Errorf("Required = %d, want %d", d.Required, Overhead)
	}
}

// The 2% safety margin plus ceiling must always produce a target whose
// capacity meets the requirement, across payload sizes and aspect ratios.
func TestPlanCapacity_ResizeAlwaysSuffices(t *testing.T) {
	widths := []int{1, 3, 10, 33, 100, 640, 1931}
	heights := []int{1, 7, 50, 480, 1080}
	payloads := []int{0, 1, 100, 5000, 100000, 3 << 20}
	for _, w := range widths {
		for _, h := range heights {
			for _, p := range payloads {
				d := PlanCapacity(w, h, p, true)
				if d.Verdict != RequiresResize {
					continue
				}
				if got := Capacity(d.TargetWidth, d.TargetHeight); got < d.Required {
					t.Errorf("PlanCapacity(%d, %d, %d): post-resize capacity %d < required %d",
						w, h, p, got, d.Required)
				}
			}
		}
	}
}
