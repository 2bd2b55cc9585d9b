package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Fixed routes outside the level sequence.
const (
	RouteTreasure = "treasure"
	RouteQuiz     = "quiz"
	RouteMenu     = "menu"
)

// nextRoutes is where a completed level sends the player.
var nextRoutes = map[int]string{
	1: "level-2",
	2: "level-3",
	3: "level-4",
	4: "level-5",
	5: "level-6",
	6: "level-7",
	7: RouteTreasure,
}

// NextRoute returns the route that follows level n, or the menu.
func NextRoute(n int) string {
	if r, ok := nextRoutes[n]; ok {
		return r
	}
	return RouteMenu
}

// LevelRoute returns the route of level n.
func LevelRoute(n int) string {
	return fmt.Sprintf("level-%d", n)
}

// ParseLevelRoute extracts n from "level-n".
func ParseLevelRoute(route string) (int, bool) {
	rest, ok := strings.CutPrefix(route, "level-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ResolveRoute accepts "3", "level-3" or a registered ID and returns the ID.
func ResolveRoute(arg string) (string, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		arg = LevelRoute(n)
	}
	if !Exists(arg) {
		return "", fmt.Errorf("registry: unknown level %q", arg)
	}
	return arg, nil
}
