package main

import (
	"github.com/Garsondee/Skeleton-Glade/internal/game"
)

// bot is the report's stand-in player. It walks at the closest living
// skeleton, swings once in reach and drinks a potion when hurt.
type bot struct {
	potionBelow float64 // health fraction that triggers a potion
	lastPotion  float64
}

func (b *bot) act(ts *game.TestSession) {
	p := ts.Player()
	if !p.Alive() {
		return
	}
	if p.Health() < b.potionBelow*p.MaxHealth() && ts.Elapsed()-b.lastPotion > 1 {
		b.lastPotion = ts.Elapsed()
		ts.Tap("1")
	}

	target := nearestAlive(p.Pos, ts.Enemies())
	if target == nil {
		ts.Release("w")
		ts.MouseUp(game.MousePrimary)
		return
	}
	ts.AimCamera(target.Pos)

	if game.HorizontalDist(p.Pos, target.Pos) > ts.Game.Tuning().Player.AttackRange*0.8 {
		ts.MouseUp(game.MousePrimary)
		ts.Press("w")
		return
	}
	ts.Release("w")
	ts.FacePlayerAt(target.Pos)
	ts.MouseDown(game.MousePrimary)
}

func nearestAlive(from game.Vec3, enemies []*game.Enemy) *game.Enemy {
	var best *game.Enemy
	bestD := 0.0
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		d := game.HorizontalDist(from, e.Pos)
		if best == nil || d < bestD {
			best, bestD = e, d
		}
	}
	return best
}
