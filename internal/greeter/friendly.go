package greeter

import "extframe/pkg/spi"

// friendlyGreeter is the default named implementation: short, informal.
type friendlyGreeter struct{}

func (g *friendlyGreeter) Greet(url *spi.URL) string {
	who := url.Param("name", "there")
	return "Hey " + who + "!"
}
