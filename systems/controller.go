package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/HUANREAL/AuraMonster/components"
)

// StateBehavior is one behavior routine of the state machine. Each state
// is independently substitutable: Enter reseeds the state's session data,
// Execute runs one synchronous tick, Exit cleans up before leaving.
type StateBehavior interface {
	Enter()
	Exit()
	Execute(dt float64)
}

// CrawlEvents receives crawl-level events the character sinks do not
// cover. Implementations feed telemetry; a nil sink is ignored.
type CrawlEvents interface {
	OnDestinationChosen(s SurfaceSample)
	OnDestinationReached()
	OnStuckRecovered()
}

// IdleSession holds the timers driving idle breathing and subtle
// movements. Reset on entering the idle state.
type IdleSession struct {
	Elapsed        float64
	TargetDuration float64
	BreathingPhase float64
	SubtleElapsed  float64
	SubtleInterval float64
}

// StandingSession holds the stop timer for standing patrol.
type StandingSession struct {
	Stopped     bool
	StopElapsed float64
	StopTarget  float64
}

// CrawlSession holds the crawling state's bookkeeping: the surface
// tracker, the active destination, and the stop and stuck timers. Created
// on entering the crawling state and reset on leaving it.
type CrawlSession struct {
	Tracker        SurfaceTracker
	Destination    SurfaceSample
	HasDestination bool
	Stopped        bool
	StopElapsed    float64
	StopTarget     float64
	StuckElapsed   float64
	PrevPos        r3.Vec
	SeekTransition bool
}

// Controller is the top-level behavior state machine for one monster.
// It is the single authoritative owner of the behavior state; the
// character learns of changes only through OnBehaviorStateChanged, so no
// bidirectional synchronization or recursion guard is needed. All work
// happens synchronously inside Tick on the caller's goroutine.
type Controller struct {
	ch      Character
	nav     Navigator
	locator *SurfaceLocator
	walker  *SurfaceWalker
	rng     *rand.Rand
	p       Params
	events  CrawlEvents

	state     components.BehaviorState
	behaviors [components.NumBehaviorStates]StateBehavior

	idle     IdleSession
	standing StandingSession
	crawl    CrawlSession
}

// NewController creates a controller for the given character. nav may be
// nil; standing patrol then no-ops until a navigator is attached. The
// controller starts in the idle state.
func NewController(ch Character, nav Navigator, ray Raycaster, rng *rand.Rand, p Params) *Controller {
	c := &Controller{
		ch:      ch,
		nav:     nav,
		locator: NewSurfaceLocator(ray, p),
		walker:  NewSurfaceWalker(ray, p),
		rng:     rng,
		p:       p,
		state:   components.StateIdle,
	}
	c.behaviors[components.StateIdle] = &idleBehavior{c}
	c.behaviors[components.StatePatrolStanding] = &standingBehavior{c}
	c.behaviors[components.StatePatrolCrawling] = &crawlingBehavior{c}
	c.behaviors[c.state].Enter()
	return c
}

// SetEvents attaches a crawl event sink.
func (c *Controller) SetEvents(ev CrawlEvents) {
	c.events = ev
}

// SetNavigator attaches the navigation collaborator, which may become
// available after the controller is constructed.
func (c *Controller) SetNavigator(nav Navigator) {
	c.nav = nav
}

// State returns the active behavior state.
func (c *Controller) State() components.BehaviorState {
	return c.state
}

// Idle exposes the idle session, for inspection.
func (c *Controller) Idle() *IdleSession {
	return &c.idle
}

// Crawl exposes the crawl session, for inspection.
func (c *Controller) Crawl() *CrawlSession {
	return &c.crawl
}

// TransitionTo switches to a new behavior state. Transitioning to the
// already-active state is a no-op: no hooks run and no timers move. The
// old state's Exit always runs before the new state's Enter, and the
// change is visible to the character in between.
func (c *Controller) TransitionTo(newState components.BehaviorState) {
	if newState == c.state || newState >= components.NumBehaviorStates {
		return
	}
	oldState := c.state
	c.behaviors[oldState].Exit()
	c.state = newState
	if c.ch != nil {
		c.ch.OnBehaviorStateChanged(oldState, newState)
	}
	c.behaviors[newState].Enter()
}

// Tick advances the active behavior by one frame. Without a character to
// control there is nothing to do; the tick is retried once the dependency
// becomes available.
func (c *Controller) Tick(dt float64) {
	if c.ch == nil {
		return
	}
	c.behaviors[c.state].Execute(dt)
}

func (c *Controller) emitDestinationChosen(s SurfaceSample) {
	if c.events != nil {
		c.events.OnDestinationChosen(s)
	}
}

func (c *Controller) emitDestinationReached() {
	if c.events != nil {
		c.events.OnDestinationReached()
	}
}

func (c *Controller) emitStuckRecovered() {
	if c.events != nil {
		c.events.OnStuckRecovered()
	}
}
