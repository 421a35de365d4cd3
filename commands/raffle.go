package commands

import (
	"github.com/spf13/cobra"

	"github.com/33cn/chain33/common"
	"github.com/33cn/chain33/rpc/jsonclient"
	rpctypes "github.com/33cn/chain33/rpc/types"
	"github.com/33cn/chain33/types"
	pty "github.com/rafflehouse/raffle/types"
)

func RaffleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raffle",
		Short: "raffle game management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		RaffleCreateRawTxCmd(),
		RaffleBuyRawTxCmd(),
		RaffleCommitDrawRawTxCmd(),
		RaffleSettleDrawRawTxCmd(),
		RaffleClaimRawTxCmd(),
		RaffleRefundRawTxCmd(),
		RaffleCancelRawTxCmd(),
		ShowRaffleInfoCmd(),
	)

	return cmd
}

func RaffleCreateRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new raffle",
		Run:   raffleCreate,
	}
	addRaffleCreateFlags(cmd)
	return cmd
}

func addRaffleCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "raffle name")
	cmd.MarkFlagRequired("name")

	cmd.Flags().Uint64P("price", "p", 0, "ticket price")
	cmd.MarkFlagRequired("price")

	cmd.Flags().Int64P("maxPerWallet", "m", 0, "max tickets per wallet")
	cmd.MarkFlagRequired("maxPerWallet")

	cmd.Flags().Int64P("endTime", "e", 0, "end time, unix seconds")
	cmd.MarkFlagRequired("endTime")

	cmd.Flags().Uint64P("minPot", "o", 0, "pot funding target, informational")
	cmd.Flags().Float64P("fee", "f", 0, "coin transaction fee")
}

func raffleCreate(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	name, _ := cmd.Flags().GetString("name")
	price, _ := cmd.Flags().GetUint64("price")
	maxPerWallet, _ := cmd.Flags().GetInt64("maxPerWallet")
	endTime, _ := cmd.Flags().GetInt64("endTime")
	minPot, _ := cmd.Flags().GetUint64("minPot")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	params := &pty.RaffleCreateTx{
		Name:         name,
		TicketPrice:  int64(price) * types.DefaultCoinPrecision,
		MaxPerWallet: maxPerWallet,
		EndTime:      endTime,
		MinPot:       int64(minPot) * types.DefaultCoinPrecision,
		Fee:          feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleCreateTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleBuyRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy raffle tickets",
		Run:   raffleBuy,
	}
	addRaffleBuyFlags(cmd)
	return cmd
}

func addRaffleBuyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleID", "g", "", "raffle ID")
	cmd.MarkFlagRequired("raffleID")

	cmd.Flags().Int64P("num", "t", 0, "ticket count")
	cmd.MarkFlagRequired("num")
	cmd.Flags().Float64P("fee", "f", 0, "coin transaction fee")
}

func raffleBuy(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	num, _ := cmd.Flags().GetInt64("num")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	params := &pty.RaffleBuyTx{
		RaffleId:   raffleID,
		NumTickets: num,
		Fee:        feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleBuyTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleCommitDrawRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Commit the draw randomness hash",
		Run:   raffleCommitDraw,
	}
	addRaffleCommitDrawFlags(cmd)
	return cmd
}

func addRaffleCommitDrawFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleID", "g", "", "raffle ID")
	cmd.MarkFlagRequired("raffleID")

	cmd.Flags().StringP("secret", "s", "", "random secret, hash is published on chain")
	cmd.Flags().StringP("commitment", "c", "", "hex commitment, used as-is when no secret given")
	cmd.Flags().Float64P("fee", "f", 0, "coin transaction fee")
}

func raffleCommitDraw(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	secret, _ := cmd.Flags().GetString("secret")
	commitment, _ := cmd.Flags().GetString("commitment")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	if secret != "" {
		commitment = common.ToHex(common.Sha256([]byte(secret)))
	}

	params := &pty.RaffleCommitDrawTx{
		RaffleId:   raffleID,
		Commitment: commitment,
		Fee:        feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleCommitDrawTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleSettleDrawRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Reveal the randomness and settle the draw",
		Run:   raffleSettleDraw,
	}
	addRaffleSettleDrawFlags(cmd)
	return cmd
}

func addRaffleSettleDrawFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleID", "g", "", "raffle ID")
	cmd.MarkFlagRequired("raffleID")

	cmd.Flags().StringP("secret", "s", "", "random secret committed before")
	cmd.Flags().StringP("randomness", "r", "", "hex randomness, used as-is when no secret given")
	cmd.Flags().Float64P("fee", "f", 0, "coin transaction fee")
}

func raffleSettleDraw(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	secret, _ := cmd.Flags().GetString("secret")
	randomness, _ := cmd.Flags().GetString("randomness")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	if secret != "" {
		randomness = common.ToHex([]byte(secret))
	}

	params := &pty.RaffleSettleDrawTx{
		RaffleId:   raffleID,
		Randomness: randomness,
		Fee:        feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleSettleDrawTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleClaimRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim the prize",
		Run:   raffleClaim,
	}
	addRaffleIdFlags(cmd)
	return cmd
}

func raffleClaim(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	params := &pty.RaffleClaimTx{
		RaffleId: raffleID,
		Fee:      feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleClaimTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleRefundRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refund",
		Short: "Refund tickets of a cancelled raffle",
		Run:   raffleRefund,
	}
	addRaffleIdFlags(cmd)
	cmd.Flags().StringP("addr", "a", "", "buyer address, authority only, defaults to sender")
	return cmd
}

func raffleRefund(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	addr, _ := cmd.Flags().GetString("addr")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	params := &pty.RaffleRefundTx{
		RaffleId: raffleID,
		Addr:     addr,
		Fee:      feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleRefundTx", params, &res)
	ctx.RunWithoutMarshal()
}

func RaffleCancelRawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel an active raffle",
		Run:   raffleCancel,
	}
	addRaffleIdFlags(cmd)
	return cmd
}

func raffleCancel(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	raffleID, _ := cmd.Flags().GetString("raffleID")
	fee, _ := cmd.Flags().GetFloat64("fee")

	feeInt64 := int64(fee * 1e4)

	params := &pty.RaffleCancelTx{
		RaffleId: raffleID,
		Fee:      feeInt64,
	}

	var res string
	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Raffle.RaffleCancelTx", params, &res)
	ctx.RunWithoutMarshal()
}

func addRaffleIdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("raffleID", "g", "", "raffle ID")
	cmd.MarkFlagRequired("raffleID")
	cmd.Flags().Float64P("fee", "f", 0, "coin transaction fee")
}

func ShowRaffleInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showInfo",
		Short: "show raffle info",
		Run:   showRaffleInfo,
	}
	addShowRaffleInfoFlags(cmd)
	return cmd
}

func addShowRaffleInfoFlags(cmd *cobra.Command) {
	cmd.Flags().Uint32P("type", "t", 0, "type, 0:by id 1:by status 2:entry 3:by addr")
	cmd.MarkFlagRequired("type")

	cmd.Flags().StringP("raffleID", "g", "", "raffle ID")

	cmd.Flags().Uint32P("status", "s", 0, "status")
	cmd.Flags().StringP("addr", "a", "", "addr")
	cmd.Flags().Int32P("count", "c", 0, "count")
	cmd.Flags().Int32P("direction", "d", 0, "direction")
	cmd.Flags().Int64P("index", "i", 0, "index")
}

func showRaffleInfo(cmd *cobra.Command, args []string) {
	rpcLaddr, _ := cmd.Flags().GetString("rpc_laddr")
	typ, _ := cmd.Flags().GetUint32("type")

	raffleID, _ := cmd.Flags().GetString("raffleID")

	status, _ := cmd.Flags().GetUint32("status")
	addr, _ := cmd.Flags().GetString("addr")
	count, _ := cmd.Flags().GetInt32("count")
	direction, _ := cmd.Flags().GetInt32("direction")
	index, _ := cmd.Flags().GetInt64("index")

	var params rpctypes.Query4Jrpc
	var rep interface{}

	params.Execer = pty.RaffleX
	if 0 == typ {
		req := &pty.ReqRaffleInfo{
			RaffleId: raffleID,
		}
		params.FuncName = pty.FuncName_QueryRaffleById
		params.Payload = types.MustPBToJSON(req)
		rep = &pty.Raffle{}
	} else if 1 == typ {
		req := &pty.ReqRaffleListByStatus{
			Status:    int32(status),
			Count:     count,
			Direction: direction,
			Index:     index,
		}
		params.FuncName = pty.FuncName_QueryRaffleListByStatus
		params.Payload = types.MustPBToJSON(req)
		rep = &pty.RaffleRecords{}
	} else if 2 == typ {
		req := &pty.ReqRaffleEntry{
			RaffleId: raffleID,
			Addr:     addr,
		}
		params.FuncName = pty.FuncName_QueryRaffleEntry
		params.Payload = types.MustPBToJSON(req)
		rep = &pty.RaffleEntry{}
	} else if 3 == typ {
		req := &pty.ReqRaffleListByAddr{
			Addr:      addr,
			Count:     count,
			Direction: direction,
			Index:     index,
		}
		params.FuncName = pty.FuncName_QueryRaffleListByAddr
		params.Payload = types.MustPBToJSON(req)
		rep = &pty.RaffleRecords{}
	}

	ctx := jsonclient.NewRPCCtx(rpcLaddr, "Chain33.Query", params, rep)
	ctx.Run()
}
