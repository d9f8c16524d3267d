package main

import (
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"campushub_server/config"
	"campushub_server/errors"
	"campushub_server/global"
	"campushub_server/routes"
	"campushub_server/store"

	redis "github.com/go-redis/redis/v8"
	"github.com/gocql/gocql"
	fiber "github.com/gofiber/fiber/v2"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func init() {
	internalErrorsFile, err := os.OpenFile("internal_errors.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	monitorErrorsFile, err := os.OpenFile("monitor_logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	errors.HandleFatalError(err)

	global.InternalLogger = log.New(internalErrorsFile, "", log.LstdFlags)
	global.MonitorLogger = log.New(monitorErrorsFile, "", log.LstdFlags)

	data, err := ioutil.ReadFile("./config.json")
	errors.HandleFatalError(err)

	err = json.Unmarshal(data, &config.Config)
	errors.HandleFatalError(err)

	jwtKeyStream, err := ioutil.ReadFile("./jwt_key.pem")
	errors.HandleFatalError(err)
	block, _ := pem.Decode(jwtKeyStream)
	global.JwtKey, err = x509.ParsePKCS1PrivateKey(block.Bytes)
	errors.HandleFatalError(err)

	jwtKeyStream, err = ioutil.ReadFile("./jwt_key.pub")
	errors.HandleFatalError(err)
	block, _ = pem.Decode(jwtKeyStream)
	global.JwtParseKey, err = x509.ParsePKCS1PublicKey(block.Bytes)
	errors.HandleFatalError(err)

	global.MinIOClient, err = minio.New(config.Config.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Config.MinIO.User, config.Config.MinIO.Password, ""),
		Secure: false,
	})
	errors.HandleFatalError(err)

	exists, err := global.MinIOClient.BucketExists(global.Context, global.ProfileImageBucket)
	errors.HandleFatalError(err)
	if !exists {
		global.MinIOClient.MakeBucket(global.Context, global.ProfileImageBucket, minio.MakeBucketOptions{Region: "us-east-1"})
	}

	global.RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.Config.Redis.Addr,
		Password: config.Config.Redis.Password,
		DB:       config.Config.Redis.DB,
	})

	cluster := gocql.NewCluster(config.Config.Scylla.Host)
	cluster.Keyspace = config.Config.Scylla.Keyspace
	global.Session, err = cluster.CreateSession()
	errors.HandleFatalError(err)
	fmt.Println("ScyllaDB initialized")
	fmt.Printf("Keyspace: %s\n\n", cluster.Keyspace)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS ` + cluster.Keyspace + `.users (
			username text,
			name text,
			student_id text,
			password_hash text,
			profile_image text,
			friend_list list<text>,
			timetable text,
			created timestamp,
			PRIMARY KEY (username))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	err = global.Session.Query(`
		CREATE TABLE IF NOT EXISTS ` + cluster.Keyspace + `.courses (
			number text,
			credits text,
			name text,
			grade text,
			category text,
			time text,
			location text,
			department text,
			professor text,
			language text,
			PRIMARY KEY (number))
		WITH compaction = { 'class' :  'LeveledCompactionStrategy'  };
	`).Exec()

	errors.HandleFatalError(err)

	global.Users = store.NewScyllaUserStore(global.Session)
	global.Catalog = store.NewScyllaCourseStore(global.Session)
}

func main() {

	defer global.Session.Close()

	app := fiber.New()
	defer app.Shutdown()

	routes.SetRoutes(app)

	fmt.Println("Starting server on port: " + config.Config.Port)
	log.Fatal(app.Listen(config.Config.Port))
}
