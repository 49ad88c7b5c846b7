// Package felt is the interaction core of a card table: a z-ordered scene
// of cards, fanned stacks, and squared piles that a pointer can rearrange.
//
// The package owns the hard part — hit testing under quarter-turn rotation,
// the drag state machine that splits cards out of groups and merges them
// back, and single- versus double-click disambiguation — and leaves pixels
// to a thin boundary: a renderer walks [Table.BuildDrawList] once per frame
// and an image provider maps rank and suit to images.
//
// # Quick start
//
// The simplest way to get a window is [Run]:
//
//	table := felt.NewTable()
//	for i, c := range felt.NewDeck()[:5] {
//		c.X, c.Y = float64(60+i*70), 120
//		table.Add(c)
//	}
//	felt.Run(table, felt.NewRenderer(images), felt.RunConfig{
//		Title: "Card Table", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Table.Tick], [PointerSource.Update], and [Renderer.Draw] directly.
//
// # Interaction model
//
// Press selects and raises the topmost entity under the pointer. Dragging a
// fanned [Stack] or squared [Pile] after a single click peels one card off
// the group; dragging after a double click (same entity, within the
// configured window) moves the whole group. Dropping a lone card onto
// another entity merges them: onto a pile's top, into a stack's hovered
// slot, or with another card into a brand-new stack or pile depending on
// the drop offset. A group reduced to one card stops existing and becomes
// that card.
//
// The left button turns a face-down entity face-up; the right button turns
// it back. Groups reverse their member order when turned over so the
// visible order stays truthful.
//
// All interaction happens on one goroutine, driven by pointer callbacks;
// there is no internal locking and no background work.
//
// # Configuration
//
// The fan spacing, drop bands, double-click window, and card dimensions are
// design constants exposed through [Config]; [LoadConfig] reads overrides
// from TOML.
package felt
