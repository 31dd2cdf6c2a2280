package main

import (
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/powdersim/carve/oerror"
	"github.com/powdersim/carve/sim"
)

// tuningProfile is the on-disk shape of an hjson tuning file. Zero values
// mean "keep the default".
type tuningProfile struct {
	Classic bool `json:"classic"`

	MaxEdgeAngle      float32 `json:"maxEdgeAngle"`
	MinSpeedPerRadian float32 `json:"minSpeedPerRadian"`
	MaxSpeedPerRadian float32 `json:"maxSpeedPerRadian"`

	EdgeCatchRiskThreshold float32 `json:"edgeCatchRiskThreshold"`
	EdgeCatchDrawScale     float32 `json:"edgeCatchDrawScale"`

	CompressionSpring  float32 `json:"compressionSpring"`
	CompressionDamping float32 `json:"compressionDamping"`
	JumpChargeWindow   float32 `json:"jumpChargeWindow"`
}

// loadProfile reads an hjson tuning file and overlays it onto the default
// simulation options.
func loadProfile(path string) (sim.Options, error) {
	opts := sim.DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, oerror.New("read tuning profile %s: %v", path, err)
	}
	var profile tuningProfile
	if err := hjson.Unmarshal(data, &profile); err != nil {
		return opts, oerror.New("parse tuning profile %s: %v", path, err)
	}

	if profile.Classic {
		opts = sim.ClassicOptions()
	}
	applyIfSet(&opts.MaxEdgeAngle, profile.MaxEdgeAngle)
	applyIfSet(&opts.MinSpeedPerRadian, profile.MinSpeedPerRadian)
	applyIfSet(&opts.MaxSpeedPerRadian, profile.MaxSpeedPerRadian)
	applyIfSet(&opts.EdgeCatchRiskThreshold, profile.EdgeCatchRiskThreshold)
	applyIfSet(&opts.EdgeCatchDrawScale, profile.EdgeCatchDrawScale)
	applyIfSet(&opts.CompressionSpring, profile.CompressionSpring)
	applyIfSet(&opts.CompressionDamping, profile.CompressionDamping)
	applyIfSet(&opts.JumpChargeWindow, profile.JumpChargeWindow)
	return opts, nil
}

func applyIfSet(dst *float32, val float32) {
	if val != 0 {
		*dst = val
	}
}
