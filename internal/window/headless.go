package window

// Headless is an in-memory Surface for tests and offscreen runs. Its size
// changes only when SetSize, Maximize or Set is called.
type Headless struct {
	Width, Height       int
	MaxWidth, MaxHeight int
	Title               string
	Frames              int
	CloseRequested      bool
	Closed              bool

	inFrame bool
}

var _ Surface = (*Headless)(nil)

func NewHeadless(width, height int) *Headless {
	return &Headless{Width: width, Height: height, MaxWidth: 1920, MaxHeight: 1080}
}

func (h *Headless) Size() (int, int) { return h.Width, h.Height }

func (h *Headless) SetSize(width, height int) {
	h.Width, h.Height = width, height
}

func (h *Headless) Maximize() {
	h.Width, h.Height = h.MaxWidth, h.MaxHeight
}

func (h *Headless) SetTitle(title string) { h.Title = title }

func (h *Headless) ShouldClose() bool { return h.CloseRequested || h.Closed }

func (h *Headless) BeginFrame() { h.inFrame = true }

func (h *Headless) EndFrame() {
	if h.inFrame {
		h.Frames++
	}
	h.inFrame = false
}

func (h *Headless) Close() { h.Closed = true }
