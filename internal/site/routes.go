package site

import "path"

// Route maps a URL path to a page template.
type Route struct {
	Path  string
	Page  string
	Title string
}

// routes is the site's route table, in navigation order.
var routes = []Route{
	{Path: "/", Page: "home", Title: "Home"},
	{Path: "/about", Page: "about", Title: "About"},
	{Path: "/projects", Page: "projects", Title: "Projects"},
	{Path: "/experience", Page: "experience", Title: "Experience"},
	{Path: "/contact", Page: "contact", Title: "Contact"},
}

// Routes returns the route table in navigation order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// RouteFor resolves a URL path to its route.
func RouteFor(urlPath string) (Route, bool) {
	cleaned := path.Clean("/" + urlPath)
	for _, route := range routes {
		if route.Path == cleaned {
			return route, true
		}
	}
	return Route{}, false
}

// OutputPath returns the file path a route's page is written to, relative to
// the output directory.
func (r Route) OutputPath() string {
	if r.Path == "/" {
		return "index.html"
	}
	return path.Join(r.Path[1:], "index.html")
}
