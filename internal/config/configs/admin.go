package configs

// Admin configures authentication for the /api/admin routes. Requests must
// carry an HS256 bearer token signed with JWTSecret and a role claim of
// "admin". An empty secret disables the check outside production.
type Admin struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:""`
}
