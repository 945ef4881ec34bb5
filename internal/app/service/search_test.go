package service

import (
	"context"
	"io/ioutil"
	"strings"
	"testing"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/db"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger

func TestSearchWrongParams(t *testing.T) {
	searchSvc := New(log)

	from := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	to := from.Add(3 * time.Hour)

	_, errSearch := searchSvc.Search(context.Background(), "host=localhost", from, to)
	if errSearch == nil {
		t.Error("expected an error for parameters that are not a db.Configuration")
	}
}

func TestSelectStatement(t *testing.T) {
	if !strings.Contains(selectSQLstmt, db.Schemaname+"."+db.Tablename) {
		t.Errorf("statement does not target the approach table: %s", selectSQLstmt)
	}
	if n := strings.Count(selectSQLstmt, "$"); n != 2 {
		t.Errorf("expected 2 placeholders, got %d", n)
	}
}

func init() {

	//log handling
	log = logrus.New()
	log.Formatter = new(logrus.TextFormatter)                     //default
	log.Formatter.(*logrus.TextFormatter).DisableColors = true    // remove colors
	log.Formatter.(*logrus.TextFormatter).DisableTimestamp = true // remove timestamp from test output
	log.Level = logrus.TraceLevel
	log.Out = ioutil.Discard
}
