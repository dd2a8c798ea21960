package api

import (
	"github.com/cfoust/gdlevel/pkg/gd/colors"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
	"github.com/cfoust/gdlevel/pkg/gd/serde"
)

var channels = schema.New("color_channel")

var (
	ChannelRed         = channels.Int(1, "r").WithDefault(255)
	ChannelGreen       = channels.Int(2, "g").WithDefault(255)
	ChannelBlue        = channels.Int(3, "b").WithDefault(255)
	ChannelPlayerColor = channels.Int(4, "player_color").WithDefault(-1)
	ChannelBlending    = channels.Bool(5, "blending").WithDefault(false)
	ChannelID          = channels.Color(6, "id")
	ChannelOpacity     = channels.Float(7, "opacity").WithDefault(1)
	ChannelToggle      = channels.Bool(8, "opacity_enabled").WithDefault(true)
	ChannelCopied      = channels.Color(9, "copied_id")
	ChannelAltRed      = channels.Int(11, "alt_r").WithDefault(255)
	ChannelAltGreen    = channels.Int(12, "alt_g").WithDefault(255)
	ChannelAltBlue     = channels.Int(13, "alt_b").WithDefault(255)
	ChannelFlag15      = channels.Bool(15, "flag_15").WithDefault(true)
	ChannelCopyOpacity = channels.Bool(17, "copy_opacity")
	ChannelFlag18      = channels.Bool(18, "flag_18").WithDefault(false)
)

var channelKind = &kind{
	schema: channels,
	format: serde.Format{Separator: "_", PairSeparator: "_"},
}

func ColorChannelSchema() *schema.Schema {
	return channels
}

// ColorChannel is one entry of a level's color table.
type ColorChannel struct {
	Struct
}

func NewColorChannel() *ColorChannel {
	return &ColorChannel{newStruct(channelKind, nil)}
}

func ColorChannelFromMapping(data schema.Data) *ColorChannel {
	return &ColorChannel{newStruct(channelKind, data)}
}

func ColorChannelFromString(text string) (*ColorChannel, error) {
	channel := NewColorChannel()
	if err := channel.parse(text); err != nil {
		return nil, err
	}
	return channel, nil
}

func (c *ColorChannel) Copy() *ColorChannel {
	return &ColorChannel{c.copy()}
}

func (c *ColorChannel) SetColor(input colors.Input) error {
	return c.setColor(input)
}

func init() {
	channels.Seal()
}
