package util

import (
	"crypto/rand"
	"math/big"
	"net"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/nats-io/nuid"
	"github.com/pkg/errors"
	hashids "github.com/speps/go-hashids"
)

// used when no readable name can be generated
const fallbackName = "grader"

//
// ServiceName returns a short readable name for a grade
// service started without one: the hashid of a random number.
//
func ServiceName() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<24))
	if err != nil {
		log.Warnf("no random seed for service name, using %q: %v", fallbackName, err)
		return fallbackName
	}

	hd := hashids.NewData()
	hd.Salt = "otf-grade service names"
	hd.MinLength = 6
	hd.Alphabet = "abcdefghijkmnpqrstuvwxyz23456789"
	h, err := hashids.NewWithData(hd)
	if err != nil {
		log.Warnf("cannot build service name encoder, using %q: %v", fallbackName, err)
		return fallbackName
	}

	name, err := h.EncodeInt64([]int64{n.Int64()})
	if err != nil {
		log.Warnf("cannot encode service name, using %q: %v", fallbackName, err)
		return fallbackName
	}
	return fallbackName + "-" + name
}

//
// ServiceID returns a unique id for a grade service instance.
//
func ServiceID() string {
	return nuid.Next()
}

//
// Elapsed starts timing an operation, the returned func logs
// how long it took. Use as: defer util.Elapsed("grade column")()
//
func Elapsed(op string) func() {
	start := time.Now()
	return func() {
		log.Infof("%s took %s", op, time.Since(start).Truncate(time.Microsecond))
	}
}

//
// FreePort asks the os for a tcp port that is free on host.
//
func FreePort(host string) (int, error) {
	l, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
	if err != nil {
		return 0, errors.Wrapf(err, "no free tcp port on %q", host)
	}
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, errors.New("listener has no tcp address")
	}
	return addr.Port, nil
}
