package input

import (
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// GlobalCursor reads the pointer position on the X11 root window, outside
// of any window the process owns. The connection is opened on first use.
type GlobalCursor struct {
	mu   sync.Mutex
	conn *xgb.Conn
	root xproto.Window
}

func (c *GlobalCursor) connect() error {
	if c.conn != nil {
		return nil
	}
	conn, err := xgb.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	c.conn = conn
	c.root = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// Position returns the pointer position in root window coordinates.
func (c *GlobalCursor) Position() (x, y int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.connect(); err != nil {
		return 0, 0, err
	}
	reply, err := xproto.QueryPointer(c.conn, c.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

func (c *GlobalCursor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}
