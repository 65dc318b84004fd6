package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	otfgrd "github.com/nsip/otf-grade"
	"github.com/peterbourgon/ff/v3"
)

func main() {

	fs := flag.NewFlagSet("otf-grade", flag.ExitOnError)
	var (
		_           = fs.String("config", "", "config file (optional), json format.")
		serviceName = fs.String("name", "", "name for this grade service instance")
		serviceID   = fs.String("id", "", "id for this grade service instance, leave blank to auto-generate a unique id")
		serviceHost = fs.String("host", "localhost", "name/address of host for this service")
		servicePort = fs.Int("port", 0, "port to run service on, if not specified will assign an available port automatically")
		locale      = fs.String("locale", "en", "locale used to read numbers when a request does not name one, e.g. en, de, fr-CA")
		workers     = fs.Int("workers", 0, "workers used to parse a column of grades, 0 uses one per cpu")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix("OTF_GRADE_SRVC"),
	); err != nil {
		fmt.Printf("\nCannot read otf-grade configuration:\n%s\n\n", err)
		return
	}

	opts := []otfgrd.Option{
		otfgrd.Name(*serviceName),
		otfgrd.ID(*serviceID),
		otfgrd.Host(*serviceHost),
		otfgrd.Port(*servicePort),
		otfgrd.Locale(*locale),
		otfgrd.Workers(*workers),
	}

	srvc, err := otfgrd.New(opts...)
	if err != nil {
		fmt.Printf("\nCannot create otf-grade service:\n%s\n\n", err)
		return
	}

	srvc.PrintConfig()

	// signal handler for shutdown
	closed := make(chan struct{})
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		fmt.Println("\notf-grade shutting down")
		srvc.Shutdown()
		fmt.Println("otf-grade closed")
		close(closed)
	}()

	srvc.Start()

	// block until shutdown by sig-handler
	<-closed

}
