package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/sinkers/db"
	"github.com/sirupsen/logrus"
)

const selectSQLstmt = "SELECT CompletedAt, Callsign, TypeCode, AircraftName, Origine, Destination, Distance, Altitude, Lat, Lon, SeenAt, Precision, Overhead, Snapshots FROM " + db.Schemaname + "." + db.Tablename + " WHERE CompletedAt BETWEEN $1 AND $2 ORDER BY CompletedAt"

type Service struct {
	Log *logrus.Logger

	mu sync.Mutex
	db *sql.DB
}

func New(log *logrus.Logger) app.Service {
	//init the logger here
	return &Service{Log: log}
}

func (s *Service) Search(ctx context.Context, params interface{}, fromTimeStamp, toTimeStamp time.Time) ([]app.Approach, error) {
	s.Log.WithContext(ctx).Info("Search service called")

	conn, err := s.conn(ctx, params)
	if err != nil {
		return nil, err
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": selectSQLstmt,
	}).Debug("Select statement")

	rows, errQuery := conn.QueryContext(ctx, selectSQLstmt, fromTimeStamp, toTimeStamp)
	if errQuery != nil {
		return nil, errQuery
	}
	defer rows.Close()

	result := make([]app.Approach, 0)
	for rows.Next() {
		var (
			a            app.Approach
			typeCode     sql.NullString
			aircraftName sql.NullString
			origine      sql.NullString
			destination  sql.NullString
			precision    sql.NullString
			seenAt       sql.NullTime
		)
		if errScan := rows.Scan(&a.CompletedAt, &a.Callsign, &typeCode, &aircraftName, &origine, &destination,
			&a.Distance, &a.Altitude, &a.Lat, &a.Lon, &seenAt, &precision, &a.Overhead, &a.Snapshots); errScan != nil {
			return nil, errScan
		}
		a.TypeCode = typeCode.String
		a.AircraftName = aircraftName.String
		a.Origin = origine.String
		a.Destination = destination.String
		a.Precision = precision.String
		a.SeenAt = seenAt.Time

		result = append(result, a)
	}

	if errRow := rows.Err(); errRow != nil {
		return nil, errRow
	}

	return result, nil
}

// conn opens the database on first use, the handle is then shared by
// every search.
func (s *Service) conn(ctx context.Context, params interface{}) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	parameters, ok := params.(db.Configuration)
	if !ok {
		return nil, errors.New("search service needs a db.Configuration")
	}

	s.Log.WithContext(ctx).Info("Search service - init DB")
	conn, err := db.Open(ctx, s.Log, parameters)
	if err != nil {
		return nil, err
	}
	s.db = conn

	return conn, nil
}
