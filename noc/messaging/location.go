package messaging

import "fmt"

// Location identifies a per virtual channel slot at a network interface.
// VC is -1 when the location refers to a whole node.
type Location struct {
	Subnet int
	Node   int
	VC     int
}

func (l Location) String() string {
	if l.VC < 0 {
		return fmt.Sprintf("subnet %d node %d", l.Subnet, l.Node)
	}

	return fmt.Sprintf("subnet %d node %d vc %d", l.Subnet, l.Node, l.VC)
}
