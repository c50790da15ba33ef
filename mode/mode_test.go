package mode

import "testing"

func TestElevatesOnce(t *testing.T) {
	c := NewController(0)
	fired := 0
	for i := 0; i < 250; i++ {
		var elevated bool
		c, elevated = c.Observe(1)
		if elevated {
			fired++
			if c.Collected() != 100 {
				t.Errorf("elevated at %d collected, want 100", c.Collected())
			}
		}
	}
	if fired != 1 {
		t.Errorf("elevation fired %d times, want 1", fired)
	}
	if c.Mode() != Elevated {
		t.Errorf("mode = %v, want Elevated", c.Mode())
	}
}

func TestResetReturnsToNormal(t *testing.T) {
	c := NewController(3)
	c, _ = c.Observe(3)
	if c.Mode() != Elevated {
		t.Fatal("expected Elevated after reaching threshold")
	}
	c = c.Reset()
	if c.Mode() != Normal || c.Collected() != 0 {
		t.Errorf("after reset: mode %v collected %d", c.Mode(), c.Collected())
	}
	if _, elevated := c.Observe(3); !elevated {
		t.Error("controller did not elevate again after reset")
	}
}

func TestObserveIgnoresNonPositive(t *testing.T) {
	c := NewController(1)
	c, elevated := c.Observe(0)
	if elevated || c.Collected() != 0 {
		t.Errorf("Observe(0) changed state: elevated=%t collected=%d", elevated, c.Collected())
	}
}
