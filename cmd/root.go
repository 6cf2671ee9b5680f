package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve   ServeCmd   `cmd:"" default:"1"                                  help:"Run the server"`
	Migrate MigrateCmd `cmd:"" help:"Run database migrations"`
	Reindex ReindexCmd `cmd:"" help:"Rebuild the brewery search index"`
	Geocode GeocodeCmd `cmd:"" help:"Fill in missing brewery coordinates"`
	AddUser AddUserCmd `cmd:"" help:"Add an administrator for the write API"`
}
