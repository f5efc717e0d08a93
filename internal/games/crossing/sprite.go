package crossing

// Sprite is an opaque image identifier resolved by the renderer.
type Sprite string

const (
	SpriteBug      Sprite = "enemy-bug"
	SpriteGemGreen Sprite = "gem-green"
	SpriteGemBlue  Sprite = "gem-blue"
	SpriteGemGold  Sprite = "gem-gold"
	SpriteGoal     Sprite = "selector"

	SpriteBoy          Sprite = "char-boy"
	SpriteCatGirl      Sprite = "char-cat-girl"
	SpriteHornGirl     Sprite = "char-horn-girl"
	SpritePinkGirl     Sprite = "char-pink-girl"
	SpritePrincessGirl Sprite = "char-princess-girl"
)

// Character is a selectable player look.
type Character struct {
	Name   string
	Title  string
	Sprite Sprite
}

// Characters lists the selectable characters, default first.
func Characters() []Character {
	return []Character{
		{Name: "boy", Title: "Boy", Sprite: SpriteBoy},
		{Name: "cat", Title: "Cat Girl", Sprite: SpriteCatGirl},
		{Name: "horn", Title: "Horn Girl", Sprite: SpriteHornGirl},
		{Name: "pink", Title: "Pink Girl", Sprite: SpritePinkGirl},
		{Name: "princess", Title: "Princess", Sprite: SpritePrincessGirl},
	}
}

// CharacterSprite returns the sprite for a character name.
// Unknown names fall back to the boy.
func CharacterSprite(name string) Sprite {
	for _, c := range Characters() {
		if c.Name == name {
			return c.Sprite
		}
	}
	return SpriteBoy
}

// Renderer draws a sprite at a pixel position.
type Renderer interface {
	Draw(sprite Sprite, x, y float64)
}

// DrawCall is one recorded Draw.
type DrawCall struct {
	Sprite Sprite
	X, Y   float64
}

// DrawList is a Renderer that records draw calls in order.
type DrawList []DrawCall

// Draw implements Renderer.
func (l *DrawList) Draw(sprite Sprite, x, y float64) {
	*l = append(*l, DrawCall{Sprite: sprite, X: x, Y: y})
}
