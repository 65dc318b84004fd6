package otfgrade

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nsip/otf-grade/gradeinput"
	"github.com/nsip/otf-grade/internal/util"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type OtfGradeService struct {
	// embedded web server to handle grade requests
	e *echo.Echo
	// the unique name of this service when running multiple instances
	serviceName string
	// the unique id of this service when running multiple instances
	serviceID string
	// the host address this service instance is running on
	serviceHost string
	// the port that this service instance is running on
	servicePort int
	// locale used to read numbers when a request names none
	locale string
	// workers used to parse a column of grades
	workers int
}

//
// create a new service instance
//
func New(options ...Option) (*OtfGradeService, error) {

	srvc := OtfGradeService{}

	if err := srvc.setOptions(options...); err != nil {
		return nil, err
	}

	srvc.e = echo.New()
	srvc.e.HideBanner = true
	srvc.e.Logger.SetLevel(log.INFO)
	srvc.e.Use(middleware.Recover())
	srvc.e.Use(middleware.Logger())
	// add pingable method to know we're up
	srvc.e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "OK")
	})
	srvc.e.GET("/excused", srvc.buildExcusedHandler())
	// add grade methods
	srvc.e.POST("/grade", srvc.buildGradeHandler())
	srvc.e.POST("/grades", srvc.buildColumnHandler())

	return &srvc, nil
}

//
// start the service running
//
func (s *OtfGradeService) Start() {

	address := fmt.Sprintf("%s:%d", s.serviceHost, s.servicePort)
	go func(addr string) {
		if err := s.e.Start(addr); err != nil && err != http.ErrServerClosed {
			s.e.Logger.Info("error starting server: ", err, ", shutting down...")
			// attempt clean shutdown by raising sig int
			p, _ := os.FindProcess(os.Getpid())
			p.Signal(os.Interrupt)
		}
	}(address)

}

//
// read the request body once, it is queried with gjson
//
func readBody(c echo.Context) ([]byte, error) {
	body, err := ioutil.ReadAll(c.Request().Body)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read request body")
	}
	return body, nil
}

//
// creates the single value grade method
// requires a json body of
// value: the text (or number) typed into the gradebook cell
// enterGradesAs, gradingScheme, pointsPossible, locale: the grading settings
//
func (s *OtfGradeService) buildGradeHandler() echo.HandlerFunc {

	sName := s.serviceName
	sID := s.serviceID

	return func(c echo.Context) error {
		body, err := readBody(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		opts, err := gradeOptions(body, s.locale)
		if err != nil {
			c.Logger().Warn("grade request rejected: ", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		value, err := cellText(gjson.GetBytes(body, "value"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		entry := gradeinput.ParseTextValue(value, opts)

		gradeResponse := map[string]interface{}{
			"gradeEntry":       entry,
			"enterGradesAs":    opts.EnterGradesAs,
			"gradeServiceID":   sID,
			"gradeServiceName": sName,
		}

		return c.JSON(http.StatusOK, gradeResponse)
	}
}

//
// creates the column grade method, the same settings as
// the single value method applied to every entry of
// values: array of cell texts (or numbers)
//
func (s *OtfGradeService) buildColumnHandler() echo.HandlerFunc {

	sName := s.serviceName
	sID := s.serviceID
	workers := s.workers

	return func(c echo.Context) error {
		defer util.Elapsed("grade column")()

		body, err := readBody(c)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		opts, err := gradeOptions(body, s.locale)
		if err != nil {
			c.Logger().Warn("grade column request rejected: ", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		values, err := columnTexts(body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		entries, err := gradeinput.ParseColumn(c.Request().Context(), values, opts, workers)
		if err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, errors.Wrap(err, "grade column abandoned").Error())
		}

		columnResponse := map[string]interface{}{
			"gradeEntries":     entries,
			"enterGradesAs":    opts.EnterGradesAs,
			"gradeServiceID":   sID,
			"gradeServiceName": sName,
		}

		return c.JSON(http.StatusOK, columnResponse)
	}
}

//
// reports whether the query param value is the
// excused marker
//
func (s *OtfGradeService) buildExcusedHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		value := c.QueryParam("value")
		return c.JSON(http.StatusOK, map[string]interface{}{
			"value":   value,
			"excused": gradeinput.IsExcused(value),
		})
	}
}

//
// shut the server down gracefully
//
func (s *OtfGradeService) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.e.Shutdown(ctx); err != nil {
		fmt.Println("could not shut down server cleanly: ", err)
		s.e.Logger.Fatal(err)
	}

}

func (s *OtfGradeService) PrintConfig() {

	fmt.Println("\n\tOTF-Grade Service Configuration")
	fmt.Println("\t---------------------------------")
	fmt.Println()

	s.printID()
	s.printGradeConfig()

}

func (s *OtfGradeService) printID() {
	fmt.Println("\tservice name:\t\t", s.serviceName)
	fmt.Println("\tservice ID:\t\t", s.serviceID)
	fmt.Println("\tservice host:\t\t", s.serviceHost)
	fmt.Println("\tservice port:\t\t", s.servicePort)
}

func (s *OtfGradeService) printGradeConfig() {
	locale := s.locale
	if strings.TrimSpace(locale) == "" {
		locale = "(default)"
	}
	fmt.Println("\tnumber locale:\t\t", locale)
	workers := "one per cpu"
	if s.workers > 0 {
		workers = fmt.Sprint(s.workers)
	}
	fmt.Println("\tcolumn workers:\t\t", workers)
}
