package api

import (
	opt "github.com/repeale/fp-go/option"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
	"github.com/cfoust/gdlevel/pkg/gd/serde"
)

var objects = schema.New("object")

// Level objects and triggers. Keys that are not listed here (text, HSV
// strings and so on) survive parsing and dumping as raw strings.
var (
	ObjectID             = objects.Int(1, "id").WithDefault(1)
	X                    = objects.Float(2, "x").WithDefault(0)
	Y                    = objects.Float(3, "y").WithDefault(0)
	FlippedHorizontally  = objects.Bool(4, "is_flipped_horizontally")
	FlippedVertically    = objects.Bool(5, "is_flipped_vertically")
	Rotation             = objects.Float(6, "rotation")
	Red                  = objects.Int(7, "r")
	Green                = objects.Int(8, "g")
	Blue                 = objects.Int(9, "b")
	Duration             = objects.Float(10, "duration")
	TouchTriggered       = objects.Bool(11, "touch_triggered")
	PortalChecked        = objects.Bool(13, "portal_checked")
	PlayerColor1         = objects.Bool(15, "player_color_1")
	PlayerColor2         = objects.Bool(16, "player_color_2")
	Blending             = objects.Bool(17, "blending")
	EditorLayer1         = objects.Int(20, "editor_layer_1")
	Color1               = objects.Color(21, "color_1")
	Color2               = objects.Color(22, "color_2")
	TargetColor          = objects.Color(23, "target_color_id")
	ZLayer               = objects.Int(24, "z_layer")
	ZOrder               = objects.Int(25, "z_order")
	MoveX                = objects.Int(28, "move_x")
	MoveY                = objects.Int(29, "move_y")
	Easing               = objects.Int(30, "easing")
	Scale                = objects.Float(32, "scale")
	GroupParent          = objects.Bool(34, "group_parent")
	Opacity              = objects.Float(35, "opacity")
	Color1HSVEnabled     = objects.Bool(41, "color_1_hsv_enabled")
	Color2HSVEnabled     = objects.Bool(42, "color_2_hsv_enabled")
	FadeIn               = objects.Float(45, "fade_in")
	Hold                 = objects.Float(46, "hold")
	FadeOut              = objects.Float(47, "fade_out")
	PulseMode            = objects.Int(48, "pulse_mode")
	CopiedColor          = objects.Color(50, "copied_color_id")
	TargetGroup          = objects.Int(51, "target_group_id")
	PulseTarget          = objects.Int(52, "pulse_target_type")
	ActivateGroup        = objects.Bool(56, "activate_group")
	Groups               = objects.Groups(57, "groups")
	LockToPlayerX        = objects.Bool(58, "lock_to_player_x")
	LockToPlayerY        = objects.Bool(59, "lock_to_player_y")
	CopyOpacity          = objects.Bool(60, "copy_opacity")
	EditorLayer2         = objects.Int(61, "editor_layer_2")
	SpawnTriggered       = objects.Bool(62, "spawn_triggered")
	SpawnDelay           = objects.Float(63, "spawn_delay")
	DontFade             = objects.Bool(64, "dont_fade")
	MainOnly             = objects.Bool(65, "main_only")
	DetailOnly           = objects.Bool(66, "detail_only")
	DontEnter            = objects.Bool(67, "dont_enter")
	Degrees              = objects.Int(68, "degrees")
	Times360             = objects.Int(69, "times_360")
	LockObjectRotation   = objects.Bool(70, "lock_object_rotation")
	SecondaryGroup       = objects.Int(71, "secondary_group_id")
	XMod                 = objects.Float(72, "x_mod")
	YMod                 = objects.Float(73, "y_mod")
	Strength             = objects.Float(75, "strength")
	AnimationID          = objects.Int(76, "animation_id")
	Count                = objects.Int(77, "count")
	SubtractCount        = objects.Bool(78, "subtract_count")
	PickupMode           = objects.Int(79, "pickup_mode")
	ItemID               = objects.Int(80, "item_id")
	HoldMode             = objects.Bool(81, "hold_mode")
	ToggleType           = objects.Int(82, "toggle_type")
	Interval             = objects.Float(84, "interval")
	EasingRate           = objects.Float(85, "easing_rate")
	Exclusive            = objects.Bool(86, "exclusive")
	MultiTrigger         = objects.Bool(87, "multi_trigger")
	Comparison           = objects.Int(88, "comparison")
	DualMode             = objects.Bool(89, "dual_mode")
	Speed                = objects.Float(90, "speed")
	FollowDelay          = objects.Float(91, "follow_delay")
	YOffset              = objects.Float(92, "y_offset")
	TriggerOnExit        = objects.Bool(93, "trigger_on_exit")
	DynamicBlock         = objects.Bool(94, "dynamic_block")
	BlockB               = objects.Int(95, "block_b_id")
	DisableGlow          = objects.Bool(96, "disable_glow")
	CustomRotationSpeed  = objects.Float(97, "custom_rotation_speed")
	DisableRotation      = objects.Bool(98, "disable_rotation")
	MultiActivate        = objects.Bool(99, "multi_activate")
	UseTarget            = objects.Bool(100, "use_target")
	TargetPosCoordinates = objects.Int(101, "target_pos_coordinates")
	EditorDisable        = objects.Bool(102, "editor_disable")
	HighDetail           = objects.Bool(103, "high_detail")
	MaxSpeed             = objects.Float(105, "max_speed")
	RandomizeStart       = objects.Bool(106, "randomize_start")
	AnimationSpeed       = objects.Float(107, "animation_speed")
	LinkedGroup          = objects.Int(108, "linked_group_id")
)

var objectKind = &kind{
	schema: objects,
	format: serde.Format{Separator: ",", PairSeparator: ","},
}

// ObjectSchema returns the field catalog shared by all objects.
func ObjectSchema() *schema.Schema {
	return objects
}

// Object is one element of a level: a block, decoration, portal or trigger.
type Object struct {
	Struct
}

func NewObject() *Object {
	return &Object{newStruct(objectKind, nil)}
}

// ObjectFromMapping wraps data as-is. It is not checked against the schema.
func ObjectFromMapping(data schema.Data) *Object {
	return &Object{newStruct(objectKind, data)}
}

func ObjectFromString(text string) (*Object, error) {
	object := NewObject()
	if err := object.parse(text); err != nil {
		return nil, err
	}
	return object, nil
}

func (o *Object) Copy() *Object {
	return &Object{o.copy()}
}

func (o *Object) SetColor(input colors.Input) error {
	return o.setColor(input)
}

// AddGroups puts the object into every group in ids.
func (o *Object) AddGroups(ids ...int) {
	current := Groups.Get(o)
	if opt.IsNone(current) {
		Groups.Set(o, schema.NewGroups(ids...))
		return
	}
	Groups.Set(o, current.Value.Union(ids...))
}

func init() {
	objects.Seal()
}
