package config

import (
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   []string
	}{
		{
			name: "empty variants",
			mutate: func(c *Config) {
				short := c.Blocks.Types[BlockShort]
				short.Variants = nil
				c.Blocks.Types[BlockShort] = short
			},
			want: []string{`type "short" has no variants`},
		},
		{
			name: "inverted drag radii",
			mutate: func(c *Config) {
				c.Cannon.MinDragRadius = 300
			},
			want: []string{"max drag radius", "max launch power radius"},
		},
		{
			name: "unknown block type",
			mutate: func(c *Config) {
				c.Castle.Layout = append(c.Castle.Layout, BlockPlacement{Type: "tower"})
			},
			want: []string{`unknown type "tower"`},
		},
		{
			name: "initial damage at capacity",
			mutate: func(c *Config) {
				c.Castle.Layout = []BlockPlacement{{Type: BlockLong, InitialDamage: 2}}
			},
			want: []string{"initial damage 2"},
		},
		{
			name: "thresholds swapped",
			mutate: func(c *Config) {
				c.Blocks.DamageThreshold = 10
				c.Blocks.DestructionThreshold = 5
			},
			want: []string{"thresholds"},
		},
		{
			name: "no ammo and no samples",
			mutate: func(c *Config) {
				c.Cannon.Ammo = 0
				c.Trajectory.MaxSamples = 0
			},
			want: []string{"ammo 0", "trajectory"},
		},
		{
			name: "rest polls and tutorial loop",
			mutate: func(c *Config) {
				c.Projectile.RestPolls = 0
				c.Tutorial.LoopTicks = 0
			},
			want: []string{"rest polls 0", "tutorial"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)

			err := c.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestMaxDamage(t *testing.T) {
	c := Default()
	if got := c.Blocks.Types[BlockShort].MaxDamage(); got != 1 {
		t.Errorf("short max damage = %d, want 1", got)
	}
	if got := c.Blocks.Types[BlockLong].MaxDamage(); got != 2 {
		t.Errorf("long max damage = %d, want 2", got)
	}
}

func TestStateString(t *testing.T) {
	if Dragging.String() != "dragging" || StateID(99).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}
