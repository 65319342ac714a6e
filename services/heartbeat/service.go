package heartbeat

import (
	"context"
	"sync"
	"time"

	"pixelshell-go/bus"
	"pixelshell-go/config"
	"pixelshell-go/logx"
	"pixelshell-go/types"
)

var (
	topicConfigDevice = bus.T("config", "device")
	topicShell        = bus.T("shell", "+")
)

// Status is what the service last heard from the shell.
type Status struct {
	Power types.PowerState
	App   string
	Beats int
}

// Service follows the shell's retained status topics and logs a periodic
// heartbeat line. The period comes from the device config when one is
// published, otherwise from Interval.
type Service struct {
	Interval time.Duration

	mu sync.Mutex
	st Status
}

func New(interval time.Duration) *Service { return &Service{Interval: interval} }

// Status returns a snapshot.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	cfgSub := conn.Subscribe(topicConfigDevice)
	defer conn.Unsubscribe(cfgSub)
	shSub := conn.Subscribe(topicShell)
	defer conn.Unsubscribe(shSub)

	var tick *time.Ticker
	var tickC <-chan time.Time
	setInterval := func(d time.Duration) {
		if d <= 0 {
			return
		}
		if tick == nil {
			tick = time.NewTicker(d)
			tickC = tick.C
		} else {
			tick.Reset(d)
		}
	}
	setInterval(s.Interval)
	defer func() {
		if tick != nil {
			tick.Stop()
		}
	}()

	// loop until context is cancelled, respond to tick, config and status changes
	for {
		select {
		case <-ctx.Done():
			logx.Info("heartbeat", "stopping")
			return
		case <-tickC:
			st := s.beat()
			logx.Info("heartbeat", "alive", "power", string(st.Power), "app", st.App, "beats", st.Beats)
		case msg, ok := <-cfgSub.Channel():
			if !ok {
				return
			}
			if d, ok := msg.Payload.(config.Device); ok && d.HeartbeatS > 0 {
				setInterval(time.Duration(d.HeartbeatS) * time.Second)
				logx.Info("heartbeat", "interval set", "seconds", d.HeartbeatS)
			}
		case msg, ok := <-shSub.Channel():
			if !ok {
				return
			}
			s.observe(msg)
		}
	}
}

func (s *Service) beat() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.Beats++
	return s.st
}

func (s *Service) observe(msg *bus.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch p := msg.Payload.(type) {
	case types.PowerStatus:
		if p.State != s.st.Power {
			logx.Debug("heartbeat", "power", "state", string(p.State))
		}
		s.st.Power = p.State
	case types.AppStatus:
		s.st.App = p.Name
	}
}

// Start the heartbeat service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}
