package config

import "github.com/golangdaddy/junkyard/pkg/rng"

// Tuning is the full set of gameplay constants. Every field can be
// overridden from the "tuning" section of the config file.
type Tuning struct {
	ScreenWidth  int `json:"screenWidth" mapstructure:"screenWidth"`
	ScreenHeight int `json:"screenHeight" mapstructure:"screenHeight"`
	TickRate     int `json:"tickRate" mapstructure:"tickRate"`
	MaxCatchUp   int `json:"maxCatchUp" mapstructure:"maxCatchUp"`

	StartingMoney    int     `json:"startingMoney" mapstructure:"startingMoney"`
	MaxRounds        int     `json:"maxRounds" mapstructure:"maxRounds"`
	TierThreshold    int     `json:"tierThreshold" mapstructure:"tierThreshold"`
	BaselineMaxSpeed float64 `json:"baselineMaxSpeed" mapstructure:"baselineMaxSpeed"`

	// Driving
	Accel            float64 `json:"accel" mapstructure:"accel"`
	Decel            float64 `json:"decel" mapstructure:"decel"`
	TachMax          float64 `json:"tachMax" mapstructure:"tachMax"`
	TachDrop         float64 `json:"tachDrop" mapstructure:"tachDrop"`
	BlownEngineTicks int     `json:"blownEngineTicks" mapstructure:"blownEngineTicks"`
	RampDistance     float64 `json:"rampDistance" mapstructure:"rampDistance"`
	MinLaunchSpeed   float64 `json:"minLaunchSpeed" mapstructure:"minLaunchSpeed"`
	DriveWheelSpin   float64 `json:"driveWheelSpin" mapstructure:"driveWheelSpin"`
	ScrollWrap       float64 `json:"scrollWrap" mapstructure:"scrollWrap"`

	// Jump
	Gravity          float64 `json:"gravity" mapstructure:"gravity"`
	JumpVSpeed       float64 `json:"jumpVSpeed" mapstructure:"jumpVSpeed"`
	JumpHSpeedFactor float64 `json:"jumpHSpeedFactor" mapstructure:"jumpHSpeedFactor"`
	JumpStartX       float64 `json:"jumpStartX" mapstructure:"jumpStartX"`
	JumpStartRise    float64 `json:"jumpStartRise" mapstructure:"jumpStartRise"`
	JumpWheelSpin    float64 `json:"jumpWheelSpin" mapstructure:"jumpWheelSpin"`
	GroundY          float64 `json:"groundY" mapstructure:"groundY"`
	MissTolerance    float64 `json:"missTolerance" mapstructure:"missTolerance"`

	// Jump layout
	PileStartX    float64 `json:"pileStartX" mapstructure:"pileStartX"`
	PileSpacing   float64 `json:"pileSpacing" mapstructure:"pileSpacing"`
	PileWidth     float64 `json:"pileWidth" mapstructure:"pileWidth"`
	PileHeight    float64 `json:"pileHeight" mapstructure:"pileHeight"`
	PileRise      float64 `json:"pileRise" mapstructure:"pileRise"`
	PileExtent    float64 `json:"pileExtent" mapstructure:"pileExtent"`
	LandingGap    float64 `json:"landingGap" mapstructure:"landingGap"`
	LandingWidth  float64 `json:"landingWidth" mapstructure:"landingWidth"`
	LandingHeight float64 `json:"landingHeight" mapstructure:"landingHeight"`
	CarHalfWidth  float64 `json:"carHalfWidth" mapstructure:"carHalfWidth"`
	CarTopOffset  float64 `json:"carTopOffset" mapstructure:"carTopOffset"`
	CarWidth      float64 `json:"carWidth" mapstructure:"carWidth"`
	CarHeight     float64 `json:"carHeight" mapstructure:"carHeight"`

	// Workshop
	ConveyorSpeed       float64 `json:"conveyorSpeed" mapstructure:"conveyorSpeed"`
	ConveyorStopX       float64 `json:"conveyorStopX" mapstructure:"conveyorStopX"`
	ConveyorStartPad    float64 `json:"conveyorStartPad" mapstructure:"conveyorStartPad"`
	AssembleTicks       int     `json:"assembleTicks" mapstructure:"assembleTicks"`
	FadeTicks           int     `json:"fadeTicks" mapstructure:"fadeTicks"`
	CountdownPhaseTicks int     `json:"countdownPhaseTicks" mapstructure:"countdownPhaseTicks"`

	// Money
	RoundRepair    rng.Range `json:"roundRepair" mapstructure:"roundRepair"`
	RoundPrize     rng.Range `json:"roundPrize" mapstructure:"roundPrize"`
	CrashRepair    rng.Range `json:"crashRepair" mapstructure:"crashRepair"`
	MissedRepair   rng.Range `json:"missedRepair" mapstructure:"missedRepair"`
	BlownRepair    rng.Range `json:"blownRepair" mapstructure:"blownRepair"`
	UpgradeChassis int       `json:"upgradeChassis" mapstructure:"upgradeChassis"`
	UpgradeWheels  int       `json:"upgradeWheels" mapstructure:"upgradeWheels"`
	UpgradeEngine  int       `json:"upgradeEngine" mapstructure:"upgradeEngine"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		ScreenWidth:  425,
		ScreenHeight: 290,
		TickRate:     15,
		MaxCatchUp:   5,

		StartingMoney:    35,
		MaxRounds:        6,
		TierThreshold:    2,
		BaselineMaxSpeed: 40,

		Accel:            1,
		Decel:            0.5,
		TachMax:          270,
		TachDrop:         15,
		BlownEngineTicks: 17,
		RampDistance:     5000,
		MinLaunchSpeed:   5,
		DriveWheelSpin:   0.1,
		ScrollWrap:       850,

		Gravity:          0.7,
		JumpVSpeed:       15,
		JumpHSpeedFactor: 0.2,
		JumpStartX:       50,
		JumpStartRise:    30,
		JumpWheelSpin:    0.3,
		GroundY:          228,
		MissTolerance:    20,

		PileStartX:    130,
		PileSpacing:   65,
		PileWidth:     60,
		PileHeight:    70,
		PileRise:      75,
		PileExtent:    70,
		LandingGap:    20,
		LandingWidth:  200,
		LandingHeight: 55,
		CarHalfWidth:  30,
		CarTopOffset:  25,
		CarWidth:      60,
		CarHeight:     40,

		ConveyorSpeed:       15,
		ConveyorStopX:       278,
		ConveyorStartPad:    50,
		AssembleTicks:       65,
		FadeTicks:           15,
		CountdownPhaseTicks: 15,

		RoundRepair:    rng.Range{Min: 4, Max: 6},
		RoundPrize:     rng.Range{Min: 13, Max: 17},
		CrashRepair:    rng.Range{Min: 6, Max: 10},
		MissedRepair:   rng.Range{Min: 6, Max: 10},
		BlownRepair:    rng.Range{Min: 6, Max: 10},
		UpgradeChassis: 20,
		UpgradeWheels:  12,
		UpgradeEngine:  15,
	}
}
