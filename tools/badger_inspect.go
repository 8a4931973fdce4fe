package main

import (
	"chat-gateway/domain/channel"
	"chat-gateway/repositories"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "channel:", "Prefix to scan (channel: or gateway:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Thread Name", "Custom Name", "Gateway", "Members"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			rawKey := string(item.Key())

			err := item.Value(func(v []byte) error {
				if strings.HasPrefix(rawKey, "gateway:") {
					var gw repositories.Gateway
					if err := json.Unmarshal(v, &gw); err != nil {
						fmt.Printf("Error unmarshaling key %s: %v\n", rawKey, err)
						return nil
					}
					table.Append([]string{rawKey, gw.Kind, gw.Name, "", strconv.Itoa(int(gw.ID)), ""})
					return nil
				}

				var record repositories.ChannelRecord
				if err := json.Unmarshal(v, &record); err != nil {
					// Keep scanning, a single bad record should not hide the others
					fmt.Printf("Error unmarshaling key %s: %v\n", rawKey, err)
					return nil
				}

				gateway := "-"
				if record.Gateway != nil {
					gateway = strconv.Itoa(int(*record.Gateway))
				}
				members := lo.FilterMap(record.Members, func(m repositories.MemberRecord, _ int) (string, bool) {
					return m.PersonaName, m.PersonaID != ""
				})

				table.Append([]string{
					rawKey,
					string(record.Type),
					record.ThreadName,
					record.CustomName,
					gateway,
					strings.Join(members, channel.DefaultSeparator),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			// Open in write mode once to let badger truncate, then reopen read-only
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
