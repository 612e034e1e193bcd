package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Fire-Sense/internal/engine"
	"github.com/Garsondee/Fire-Sense/internal/flow"
)

func TestActionFor(t *testing.T) {
	cases := []struct {
		screen flow.Screen
		key    ebiten.Key
		want   action
	}{
		{flow.ScreenMenu, ebiten.Key1, actionStartManual},
		{flow.ScreenMenu, ebiten.Key2, actionStartSuppression},
		{flow.ScreenMenu, ebiten.KeyI, actionInstructions},
		{flow.ScreenMenu, ebiten.KeySpace, actionNone},
		{flow.ScreenInstructions, ebiten.KeyEscape, actionMenu},
		{flow.ScreenPlaying, ebiten.KeySpace, actionSuppress},
		{flow.ScreenPlaying, ebiten.KeyS, actionSuppress},
		{flow.ScreenPlaying, ebiten.Key1, actionNone},
		{flow.ScreenPlaying, ebiten.KeyC, actionCopyReport},
		{flow.ScreenWon, ebiten.KeyEnter, actionNext},
		{flow.ScreenLost, ebiten.KeyEnter, actionNext},
		{flow.ScreenLost, ebiten.KeyEscape, actionMenu},
	}
	for _, tc := range cases {
		if got := actionFor(tc.screen, tc.key); got != tc.want {
			t.Errorf("actionFor(%s, %v) = %v, want %v", tc.screen, tc.key, got, tc.want)
		}
	}
}

func TestGame_NavigationDrivesEngine(t *testing.T) {
	g := New(Config{Seed: 3})
	if g.flow.Screen() != flow.ScreenMenu || g.engine.Running() {
		t.Fatal("new game should open on the menu with no session")
	}

	g.apply(actionStartManual)
	if g.flow.Screen() != flow.ScreenPlaying || !g.engine.Playing() {
		t.Fatal("starting level 1 should begin a session")
	}

	// Leave the fires alone until the vehicle burns.
	for i := 0; i < 600 && g.engine.Playing(); i++ {
		g.engine.Step(0.5)
	}
	if g.flow.Screen() != flow.ScreenLost {
		t.Fatalf("expected lost screen, got %s", g.flow.Screen())
	}
	if g.feed.Len() == 0 {
		t.Fatal("feed should have recorded events")
	}

	g.apply(actionNext)
	if g.flow.Screen() != flow.ScreenPlaying || g.flow.Level() != engine.LevelManual {
		t.Fatalf("retry should restart level 1, got %s level %v", g.flow.Screen(), g.flow.Level())
	}
	if g.feed.Len() != 0 {
		t.Fatal("feed should reset on a new session")
	}

	g.apply(actionMenu)
	if g.engine.Running() || g.flow.Screen() != flow.ScreenMenu {
		t.Fatal("menu should stop the engine")
	}
}

func TestGame_SuppressButtonFollowsTicket(t *testing.T) {
	g := New(Config{Level: engine.LevelSuppression, Seed: 5})
	if _, ok := g.suppressButton(); ok {
		t.Fatal("no ticket before the first spawn")
	}
	g.engine.Step(1.1)
	btn, ok := g.suppressButton()
	if !ok {
		t.Fatal("expected the button once a fire spawned")
	}
	g.handleClick(btn.x+1, btn.y+1)
	sn := g.engine.Snapshot()
	if len(sn.Fires) != 0 || sn.Extinguished != 1 {
		t.Fatalf("clicking the button should suppress the fire, got %d fires %d out", len(sn.Fires), sn.Extinguished)
	}
	if _, ok := g.suppressButton(); ok {
		t.Fatal("button should hide once the ticket is used")
	}
}

func TestGame_ClickHitsFire(t *testing.T) {
	g := New(Config{Level: engine.LevelManual, Seed: 9})
	g.engine.Step(1.1)
	sn := g.engine.Snapshot()
	if len(sn.Fires) != 1 {
		t.Fatalf("expected one fire, got %d", len(sn.Fires))
	}
	f := sn.Fires[0]
	x, y := g.scene.toScreen(f.X, f.Y)
	g.handleClick(int(x), int(y))
	after := g.engine.Snapshot().Fires[0]
	if after.ClicksRemaining != f.ClicksRemaining-1 {
		t.Fatalf("expected one click to land, remaining %d -> %d", f.ClicksRemaining, after.ClicksRemaining)
	}
}
