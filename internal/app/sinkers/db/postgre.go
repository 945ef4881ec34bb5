package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/francois-poidevin/flightnotifier/internal/app"
	"github.com/francois-poidevin/flightnotifier/internal/app/tools"
	"github.com/sirupsen/logrus"
)

const (
	Schemaname = "flightnotifier"
	Tablename  = "approach"
)

const (
	createSchemaSQL = "CREATE SCHEMA IF NOT EXISTS " + Schemaname
	createTableSQL  = "CREATE TABLE IF NOT EXISTS " + Schemaname + "." + Tablename + " (CompletedAt timestamptz NOT NULL, Callsign varchar(40) NOT NULL, TypeCode varchar(40), AircraftName varchar(40), Origine varchar(40), Destination varchar(40), Distance double precision, Altitude integer, Lat decimal, Lon decimal, SeenAt timestamptz, Precision varchar(16), Overhead boolean, Snapshots integer, geom geometry(Geometry,4326))"
	insertSQL       = "INSERT INTO " + Schemaname + "." + Tablename + " VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, ST_GeomFromText($15, 4326))"
)

type PostGreSinker struct {
	Log *logrus.Logger
	db  *sql.DB
}

func New(log *logrus.Logger) app.Sinker {
	//init the logger here
	return &PostGreSinker{Log: log}
}

// DataSourceName builds the lib/pq connection string.
func DataSourceName(parameters Configuration) string {
	return fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		parameters.Host, parameters.Port, parameters.User, parameters.Password, parameters.Dbname)
}

// Open connects to the database and checks the connection.
func Open(ctx context.Context, log *logrus.Logger, parameters Configuration) (*sql.DB, error) {
	log.WithContext(ctx).WithFields(logrus.Fields{
		"host":   parameters.Host,
		"port":   parameters.Port,
		"dbName": parameters.Dbname,
	}).Info("Init DB ...")

	db, err := sql.Open("postgres", DataSourceName(parameters))
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.WithContext(ctx).Info("Successfully connected : " + parameters.Host)
	return db, nil
}

func (s *PostGreSinker) Init(ctx context.Context, params interface{}) error {
	parameters, ok := params.(Configuration)
	if !ok {
		return errors.New("db sinker needs a db.Configuration")
	}

	db, err := Open(ctx, s.Log, parameters)
	if err != nil {
		return err
	}
	s.db = db

	// create database :
	// schema
	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": createSchemaSQL,
	}).Info("create shema")
	if _, err := s.db.ExecContext(ctx, createSchemaSQL); err != nil {
		return err
	}

	// create database :
	// table
	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": createTableSQL,
	}).Info("create table")
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return err
	}

	return nil
}

func (s *PostGreSinker) Sink(ctx context.Context, t time.Time, approach app.Approach) error {
	if s.db == nil {
		return errors.New("No database for storing approaches")
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": insertSQL,
	}).Debug("Insert statement")

	result, err := s.db.ExecContext(ctx, insertSQL, insertArgs(t, approach)...)
	if err != nil {
		return err
	}

	nb, _ := result.RowsAffected()
	s.Log.WithContext(ctx).WithFields(logrus.Fields{"Rows Affected": nb}).Info("Insert in DB ...")

	return nil
}

func (s *PostGreSinker) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func insertArgs(t time.Time, approach app.Approach) []interface{} {
	return []interface{}{
		t,
		approach.Callsign,
		approach.TypeCode,
		approach.AircraftName,
		approach.Origin,
		approach.Destination,
		approach.Distance,
		approach.Altitude,
		approach.Lat,
		approach.Lon,
		approach.SeenAt,
		approach.Precision,
		approach.Overhead,
		approach.Snapshots,
		tools.PointToWKT(approach.Lat, approach.Lon),
	}
}
