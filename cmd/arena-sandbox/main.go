// arena-sandbox runs the fire-control engine against a simulated arena and
// renders it in the terminal: drifting enemies, lock markers, aim points, and
// volleys, with an audio blip per shot. Useful for eyeballing targeting
// behavior while tuning weights
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/voidgrid/firecontrol/component"
	"github.com/voidgrid/firecontrol/engine"
	"github.com/voidgrid/firecontrol/event"
	"github.com/voidgrid/firecontrol/parameter"
	"github.com/voidgrid/firecontrol/vmath"
)

const (
	arenaWidth  = 1000.0
	arenaHeight = 600.0
	frameTime   = 33 * time.Millisecond
	shotFlashMs = 120
)

// simEnemy is one drifting arena enemy, bouncing off the walls
type simEnemy struct {
	snap component.EnemySnapshot
}

type arena struct {
	enemies map[uint64]*simEnemy
	nextID  uint64
	rng     *rand.Rand
}

func newArena(count int) *arena {
	a := &arena{
		enemies: make(map[uint64]*simEnemy),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for i := 0; i < count; i++ {
		a.spawn()
	}
	return a
}

func (a *arena) spawn() {
	a.nextID++
	size := component.SizeClass(a.rng.Intn(3))
	hp := 20.0 + 30.0*float64(size)
	variant := ""
	if a.rng.Float64() < 0.15 {
		variant = "elite"
	}
	speed := 40 + a.rng.Float64()*80
	angle := a.rng.Float64() * 2 * math.Pi
	a.enemies[a.nextID] = &simEnemy{snap: component.EnemySnapshot{
		ID:        a.nextID,
		Pos:       vmath.Vec2{X: a.rng.Float64() * arenaWidth, Y: a.rng.Float64() * arenaHeight},
		Vel:       vmath.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
		Radius:    6 + 4*float64(size),
		Health:    hp,
		MaxHealth: hp,
		Size:      size,
		Variant:   variant,
		Behavior:  "drifter",
	}}
}

func (a *arena) step(dt float64) {
	for _, e := range a.enemies {
		e.snap.Pos = e.snap.Pos.Add(e.snap.Vel.Scale(dt))
		if e.snap.Pos.X < 0 || e.snap.Pos.X > arenaWidth {
			e.snap.Vel.X = -e.snap.Vel.X
			e.snap.Pos.X = vmath.Clamp(e.snap.Pos.X, 0, arenaWidth)
		}
		if e.snap.Pos.Y < 0 || e.snap.Pos.Y > arenaHeight {
			e.snap.Vel.Y = -e.snap.Vel.Y
			e.snap.Pos.Y = vmath.Clamp(e.snap.Pos.Y, 0, arenaHeight)
		}
	}
}

func (a *arena) ActiveEnemiesNear(point vmath.Vec2, radius float64) []component.EnemySnapshot {
	out := make([]component.EnemySnapshot, 0, len(a.enemies))
	for _, e := range a.enemies {
		if vmath.Distance(e.snap.Pos, point) <= radius {
			out = append(out, e.snap)
		}
	}
	return out
}

func (a *arena) EnemyByID(id uint64) (component.EnemySnapshot, bool) {
	e, ok := a.enemies[id]
	if !ok {
		return component.EnemySnapshot{}, false
	}
	return e.snap, true
}

// simPlayer sits at the arena center
type simPlayer struct {
	stats component.PlayerStats
}

func (p *simPlayer) Position() vmath.Vec2         { return vmath.Vec2{X: arenaWidth / 2, Y: arenaHeight / 2} }
func (p *simPlayer) Velocity() vmath.Vec2         { return vmath.Vec2{} }
func (p *simPlayer) Stats() component.PlayerStats { return p.stats }
func (p *simPlayer) ShieldRadius() float64        { return 24 }

type shotFlash struct {
	from, to vmath.Vec2
	until    time.Time
}

type sandbox struct {
	screen tcell.Screen
	eng    *engine.Engine
	arena  *arena
	player *simPlayer
	log    zerolog.Logger

	flashes   []shotFlash
	lockedID  uint64
	lockCount int
	audioInit bool
}

func loadConfig(log zerolog.Logger) (*parameter.DangerWeights, component.Tier) {
	v := viper.New()
	v.SetConfigName("arena")
	v.AddConfigPath(".")
	v.SetDefault("tier", int(component.Tier3))
	v.SetDefault("weights.distance", 0.0)
	v.SetDefault("weights.direction", 0.0)
	v.SetDefault("weights.targeting_range", 0.0)

	w := parameter.DefaultWeights()
	if err := v.ReadInConfig(); err != nil {
		log.Debug().Err(err).Msg("no arena config file, using defaults")
		return w, component.Tier3
	}

	// Scalar overrides only; anything omitted keeps its default
	if d := v.GetFloat64("weights.distance"); d > 0 {
		w.Distance = d
	}
	if d := v.GetFloat64("weights.direction"); d > 0 {
		w.Direction = d
	}
	if r := v.GetFloat64("weights.targeting_range"); r > 0 {
		w.TargetingRange = r
	}
	tier := component.Tier(v.GetInt("tier")).Clamp()
	log.Info().Str("file", v.ConfigFileUsed()).Stringer("tier", tier).Msg("loaded arena config")
	return w, tier
}

func newSandbox() (*sandbox, error) {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	weights, tier := loadConfig(log)
	player := &simPlayer{stats: component.PlayerStats{
		Damage:          10,
		Multishot:       3,
		ProjectileSpeed: 300,
		FireInterval:    0.5,
	}}
	ar := newArena(14)

	eng, err := engine.New(player, ar, engine.Config{
		Weights: weights,
		Tier:    tier,
		Logger:  &log,
	})
	if err != nil {
		screen.Fini()
		return nil, err
	}

	s := &sandbox{
		screen: screen,
		eng:    eng,
		arena:  ar,
		player: player,
		log:    log,
	}
	if err := s.initAudio(); err != nil {
		// Non-fatal, sandbox can run silent
		log.Warn().Err(err).Msg("audio initialization failed")
	}
	return s, nil
}

func (s *sandbox) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		s.audioInit = true
	}
	return err
}

func (s *sandbox) playFireBlip() {
	if !s.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(40 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 660)
	speaker.Play(beep.Take(duration, sine))
}

// toCell maps arena coordinates to screen cells
func (s *sandbox) toCell(p vmath.Vec2) (int, int) {
	w, h := s.screen.Size()
	x := int(p.X / arenaWidth * float64(w-1))
	y := int(p.Y / arenaHeight * float64(h-2)) // bottom row is the HUD
	return x, y
}

func (s *sandbox) drainEvents() {
	now := time.Now()
	for _, ev := range s.eng.Events().Consume() {
		switch ev.Type {
		case event.EventTargetLocked:
			p := ev.Payload.(*event.TargetLockedPayload)
			s.lockedID = p.EnemyID
			s.lockCount = p.LockCount
		case event.EventTargetLost:
			s.lockedID = 0
			s.lockCount = 0
		case event.EventWeaponFired:
			p := ev.Payload.(*event.WeaponFiredPayload)
			for i := range p.Origins {
				s.flashes = append(s.flashes, shotFlash{
					from:  p.Origins[i],
					to:    p.AimPoints[i],
					until: now.Add(shotFlashMs * time.Millisecond),
				})
			}
			s.playFireBlip()
		}
	}
}

func (s *sandbox) draw() {
	s.screen.Clear()
	now := time.Now()

	// Shot flashes first so entities draw over them
	kept := s.flashes[:0]
	for _, f := range s.flashes {
		if now.After(f.until) {
			continue
		}
		kept = append(kept, f)
		fx, fy := s.toCell(f.from)
		tx, ty := s.toCell(f.to)
		steps := 24
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			x := fx + int(float64(tx-fx)*t)
			y := fy + int(float64(ty-fy)*t)
			s.screen.SetContent(x, y, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
		}
		s.screen.SetContent(tx, ty, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	s.flashes = kept

	for _, e := range s.arena.enemies {
		x, y := s.toCell(e.snap.Pos)
		r := [3]rune{'o', 'O', '@'}[e.snap.Size]
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if e.snap.Variant == "elite" {
			style = tcell.StyleDefault.Foreground(tcell.ColorPurple)
		}
		if e.snap.ID == s.lockedID {
			style = style.Bold(true).Underline(true)
		}
		s.screen.SetContent(x, y, r, nil, style)
	}

	px, py := s.toCell(s.player.Position())
	s.screen.SetContent(px, py, '¤', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	_, h := s.screen.Size()
	hud := fmt.Sprintf(" tier=%s locks=%d primary=%d enemies=%d  [q quit, 0-3 tier]",
		s.eng.Tier(), s.lockCount, s.lockedID, len(s.arena.enemies))
	for i, r := range hud {
		s.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	s.screen.Show()
}

func (s *sandbox) run() {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				if tev.Key() == tcell.KeyEscape || tev.Rune() == 'q' {
					return
				}
				if r := tev.Rune(); r >= '0' && r <= '3' {
					tier := component.Tier(r - '0')
					s.eng.ApplyUpgrade(engine.UpgradeDelta{Tier: &tier})
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		case <-ticker.C:
			dt := frameTime.Seconds()
			s.arena.step(dt)
			s.eng.Tick(dt)
			s.drainEvents()
			s.draw()
		}
	}
}

func main() {
	s, err := newSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arena-sandbox: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		s.screen.Fini()
		if s.audioInit {
			speaker.Close()
		}
	}()
	s.run()
}
