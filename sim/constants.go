package sim

const (
	TicksPerSecond = 60

	// MaxTickDelta caps the per-tick delta against host loop jitter.
	MaxTickDelta = float32(1.0 / 30.0)

	// Ground sampling.
	GroundRayLift      = 1.0
	GroundRayRange     = 3.0
	GroundSnapDistance = 0.25
	NormalOffsetMin    = 0.6
	NormalOffsetMax    = 1.2

	// Edge and turn model.
	DefaultMaxEdgeAngle = 1.15
	ClassicMaxEdgeAngle = 0.9
	EdgeApproachRate    = 8.0
	RailStabilization   = 0.6
	PivotSpeedFloor     = 0.8
	PivotRate           = 2.2
	SidecutRadius       = 6.5
	TurnResponse        = 8.0
	VelAlignRate        = 6.0
	SkidScrub           = 0.8
	BaseDrag            = 0.08
	SlopeAccel          = 9.81
	WeightShiftRate     = 6.0

	// Grip model.
	BaseGrip      = 0.55
	EdgeGripBonus = 0.35
	RailGripBonus = 0.15
	MinGrip       = 0.3
	MaxGrip       = 0.98
	// CoupleFalloff is the band width (radians of combined deficit) over
	// which the speed-edge coupling degrades from 1 down to CoupleFloor.
	CoupleFalloff = 0.6
	CoupleFloor   = 0.35
	// FlatBaseGraceSpeed is the speed below which riding flat never accrues
	// a required-edge deficit.
	FlatBaseGraceSpeed = 18.0

	// Carve quality.
	RailEdgeThreshold  = 0.5
	CarveSpeedFloor    = 5.0
	RailRampRate       = 3.0
	RailDecayRate      = 2.0
	PerfectionK        = 2.0
	PerfectionLerpRate = 4.0
	CommitmentRate     = 0.8
	FullArcRadians     = 1.6
	CleanMinPeakEdge   = 0.5
	CleanMinHoldTime   = 0.3
	CleanMinArc        = 0.25
	MaxChainCount      = 10
	ChainMultiplier    = 0.1
	CarveEnergyGain    = 2.0
	MaxCarveEnergy     = 6.0
	BoostViolenceScale = 0.25
	MaxTransitionBoost = 8.0
	// TransitionBoostDecay is the per-tick retention of the transition
	// boost once it has been applied as forward acceleration.
	TransitionBoostDecay = 0.85

	// Failure machine.
	WashOutDeficitThreshold = 0.15
	WashOutIntensityScale   = 2.5
	WashOutDecayRate        = 1.8
	WashOutExitIntensity    = 0.1
	WashOutSlideForce       = 12.0
	WashOutHeadingPerturb   = 1.2
	WashOutSpeedBleed       = 0.8
	WashOutEdgeFlattenRate  = 6.0
	EdgeCatchSpeedFloor     = 6.0
	EdgeCatchViolenceNorm   = 25.0
	EdgeCatchViolenceWeight = 0.5
	EdgeCatchMisalignWeight = 0.25
	EdgeCatchCommitWeight   = 0.3
	EdgeCatchBrake          = 2.2
	EdgeCatchStumbleForce   = 6.0
	EdgeCatchFlattenRate    = 12.0
	EdgeCatchBaseDuration   = 0.3
	EdgeCatchDurationScale  = 0.4
	RecoveryDuration        = 0.7
	RecoveryRiskDamping     = 0.3
	RiskLerpRate            = 5.0
	RiskSpeedFloor          = 8.0
	RiskSpeedRange          = 20.0
	WobbleRiskThreshold     = 0.5
	WobbleScale             = 0.6
	NearMissRiskLevel       = 0.9
	NearMissRecoveryTime    = 0.4
	BailoutCommitment       = 0.7
	BailoutSpeedPenalty     = 0.12
	BailoutChainPenalty     = 2
	FlatEdgeEpsilon         = 0.05

	// Compression and energy.
	MinCompression        = -0.3
	MaxCompression        = 0.8
	NeutralCompression    = 0.1
	GCompressionScale     = 0.08
	GCompressionBase      = 0.2
	PopBaseExtension      = 0.12
	PopEnergyScale        = 0.04
	CatchCompression      = 0.75
	ChargeCrouchBase      = 0.15
	ChargeCrouchScale     = 0.5
	JumpBasePower         = 4.5
	JumpChargeBonus       = 3.5
	JumpTailBonus         = 1.2
	JumpSpeedFactor       = 0.06
	JumpEnergyFactor      = 0.3
	JumpExtensionSnap     = 2.5
	GravityAccel          = 9.81
	ImpactCompressionRate = 0.05

	// Airborne model.
	BaseAirGravity      = 12.0
	MaxAirGravity       = 22.0
	AirGravityRamp      = 4.0
	SpinAccel           = 4.0
	SpinDamping         = 0.8
	PitchAccel          = 5.0
	MaxAirRoll          = 0.6
	AirRollRate         = 4.0
	AirRollEdgeFactor   = 0.5
	LandPitchLimit      = 0.5
	LandRollLimit       = 0.4
	LandHeadingLimit    = 0.8
	LandHeadingMinSpeed = 3.0
	PitchPenaltyScale   = 0.8
	RollPenaltyScale    = 0.7
	AlignPenaltyScale   = 0.5
	HardImpactSpeed     = 12.0
	ImpactBleedScale    = 0.015
	MaxImpactBleed      = 0.6
	StompMinQuality     = 0.8
	StompMinSpeed       = 8.0
	StompMinAirTime     = 0.5
	StompBoost          = 1.5
	SketchyQuality      = 0.6
	SketchyWobble       = 2.0

	// Grind machine.
	GrindBalanceLimit      = 1.0
	GrindDriftScale        = 1.5
	GrindSpeedWobble       = 0.02
	GrindBalanceCorrection = 2.5
	GrindEdgeVisualFactor  = 0.4
	GrindFriction          = 0.3
	GrindSlopeBoost        = 1.5
	GrindFailKick          = 4.0
	GrindFailPop           = 2.0
	GrindSuccessPop        = 2.5
	GrindAttachMaxRise     = 0.5
)
