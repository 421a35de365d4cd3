package executor

import (
	dbm "github.com/33cn/chain33/common/db"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func (r *Raffle) Query_QueryRaffleById(param *pty.ReqRaffleInfo) (types.Message, error) {
	raffle, err := readRaffle(r.GetStateDB(), param.GetRaffleId())
	if err != nil {
		return nil, err
	}
	return raffle, nil
}

func (r *Raffle) Query_QueryRafflesByIds(param *pty.ReqRaffleInfos) (types.Message, error) {
	var raffles []*pty.Raffle
	for _, id := range param.RaffleIds {
		raffle, err := readRaffle(r.GetStateDB(), id)
		if err != nil {
			return nil, err
		}
		raffles = append(raffles, raffle)
	}
	return &pty.ReplyRaffleList{Raffles: raffles}, nil
}

func (r *Raffle) Query_QueryRaffleListByStatus(param *pty.ReqRaffleListByStatus) (types.Message, error) {
	return listRaffleByStatus(r.GetLocalDB(), param)
}

func (r *Raffle) Query_QueryRaffleListByAddr(param *pty.ReqRaffleListByAddr) (types.Message, error) {
	return listRaffleByAddr(r.GetLocalDB(), param)
}

func (r *Raffle) Query_QueryRaffleEntry(param *pty.ReqRaffleEntry) (types.Message, error) {
	entry, err := readEntry(r.GetStateDB(), param.GetRaffleId(), param.GetAddr())
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func listRaffleByStatus(db dbm.KVDB, param *pty.ReqRaffleListByStatus) (types.Message, error) {
	count := param.Count
	if count == 0 {
		count = DefaultCount
	}
	var values [][]byte
	var err error
	if param.Index == 0 {
		values, err = db.List(calcRaffleStatusPrefix(param.Status), nil, count, param.Direction)
	} else {
		values, err = db.List(calcRaffleStatusPrefix(param.Status), calcRaffleStatusKey(param.Status, param.Index), count, param.Direction)
	}
	if err != nil {
		return nil, err
	}

	var records []*pty.RaffleRecord
	for _, value := range values {
		var record pty.RaffleRecord
		err := types.Decode(value, &record)
		if err != nil {
			continue
		}
		records = append(records, &record)
	}

	return &pty.RaffleRecords{Records: records}, nil
}

func listRaffleByAddr(db dbm.KVDB, param *pty.ReqRaffleListByAddr) (types.Message, error) {
	count := param.Count
	if count == 0 {
		count = DefaultCount
	}
	var values [][]byte
	var err error
	if param.Index == 0 {
		values, err = db.List(calcRaffleAddrPrefix(param.Addr), nil, count, param.Direction)
	} else {
		values, err = db.List(calcRaffleAddrPrefix(param.Addr), calcRaffleAddrKey(param.Addr, param.Index), count, param.Direction)
	}
	if err != nil {
		return nil, err
	}

	var records []*pty.RaffleRecord
	for _, value := range values {
		var record pty.RaffleRecord
		err := types.Decode(value, &record)
		if err != nil {
			continue
		}
		records = append(records, &record)
	}

	return &pty.RaffleRecords{Records: records}, nil
}
