/*
Package influx provides a lightweight client for the line-protocol write path
and the JSON query path of an InfluxDB-compatible server.

# Client

Use NewClient to create a client, then bind a database handle:

	client := influx.NewClient(&influx.Config{
		Endpoint: "http://localhost:8086",
	})
	db, err := client.CreateDatabase(ctx, "telemetry")

# Write Data

Build points with typed field values and insert them in one request:

	p := influx.NewPoint("cpu").
		AddTag("host", "server1").
		AddField("temperature", influx.Integer(42)).
		At(time.Now())
	err := db.Insert(ctx, p)

Inserting no points performs no request.

# Query Data

Query returns the decoded Response tree. Rows give typed, column-indexed
access to the otherwise untyped value grid:

	resp, err := db.Query(ctx, "SELECT * FROM cpu")
	if err != nil {
		return err
	}
	for _, row := range resp.Results[0].Series[0].Rows() {
		host := row.GetDefault("host", influx.String("unknown"))
		ts, err := row.Time()
		...
	}
*/
package influx
