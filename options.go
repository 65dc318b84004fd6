package otfgrade

import (
	"github.com/nsip/otf-grade/internal/util"
	"github.com/pkg/errors"
)

type Option func(*OtfGradeService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (srvc *OtfGradeService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// set the name of this service instance,
// if blank a short readable name is generated
//
func Name(name string) Option {
	return func(s *OtfGradeService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.ServiceName()
		return nil
	}
}

//
// set the unique id of this service instance,
// if blank a nuid is generated
//
func ID(id string) Option {
	return func(s *OtfGradeService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.ServiceID()
		return nil
	}
}

//
// host address the service listens on
//
func Host(hostName string) Option {
	return func(s *OtfGradeService) error {
		if hostName == "" {
			return errors.New("host name must be supplied")
		}
		s.serviceHost = hostName
		return nil
	}
}

//
// port the service listens on, if 0 an
// available port is found
//
func Port(port int) Option {
	return func(s *OtfGradeService) error {
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.FreePort(s.serviceHost)
		if err != nil {
			return errors.Wrap(err, "cannot find a port for the service")
		}
		s.servicePort = p
		return nil
	}
}

//
// locale used to read numbers in requests that
// do not name their own locale, e.g. "en", "de", "fr-CA"
//
func Locale(tag string) Option {
	return func(s *OtfGradeService) error {
		s.locale = tag
		return nil
	}
}

//
// number of workers used to parse a column of grades,
// 0 uses one per cpu
//
func Workers(n int) Option {
	return func(s *OtfGradeService) error {
		if n < 0 {
			return errors.New("workers cannot be negative")
		}
		s.workers = n
		return nil
	}
}
