package dialect

// WASM64 returns the fixed builtin table for the 64-bit target
// dialect: the i64 value operators plus the eth.* host-import surface
// the polyfill relies on for storage, environment and logging access.
// Polyfill-defined and user-defined functions are not part of this
// static table; callers that need the full closure for a given
// translation run should union this table with the polyfill's and the
// output object's own function names (see package analysis).
func WASM64() Dialect {
	return Dialect{
		Name:  "wasm64",
		Width: Width64,
		Builtins: table(
			b("i64.add", 2, 1), b("i64.sub", 2, 1), b("i64.mul", 2, 1),
			b("i64.div_u", 2, 1), b("i64.rem_u", 2, 1),
			b("i64.and", 2, 1), b("i64.or", 2, 1), b("i64.xor", 2, 1),
			b("i64.shl", 2, 1), b("i64.shr_u", 2, 1), b("i64.shr_s", 2, 1),
			b("i64.clz", 1, 1), b("i64.ctz", 1, 1),
			b("i64.eqz", 1, 1), b("i64.eq", 2, 1), b("i64.ne", 2, 1),
			b("i64.lt_u", 2, 1), b("i64.le_u", 2, 1),
			b("i64.gt_u", 2, 1), b("i64.ge_u", 2, 1),
			b("i64.load", 1, 1), b("i64.store", 2, 0),
			b("i64.load8_u", 1, 1), b("i64.store8", 2, 0),
			b("i32.load", 1, 1), b("i32.store", 2, 0),
			b("i32.wrap_i64", 1, 1), b("i64.extend_i32_u", 1, 1),
			b("unreachable", 0, 0),

			// eth.* host imports (spec.md §6)
			b("eth.useGas", 1, 0), b("eth.getGasLeft", 0, 1),
			b("eth.getAddress", 1, 0), b("eth.getExternalBalance", 2, 0),
			b("eth.getBlockHash", 2, 1), b("eth.call", 5, 1),
			b("eth.callDataCopy", 3, 0), b("eth.getCallDataSize", 0, 1),
			b("eth.callCode", 5, 1), b("eth.callDelegate", 4, 1),
			b("eth.callStatic", 4, 1), b("eth.storageStore", 2, 0),
			b("eth.storageLoad", 2, 0), b("eth.getCaller", 1, 0),
			b("eth.getCallValue", 1, 0), b("eth.codeCopy", 3, 0),
			b("eth.getCodeSize", 0, 1), b("eth.getBlockCoinbase", 1, 0),
			b("eth.create", 4, 1), b("eth.getBlockDifficulty", 1, 0),
			b("eth.externalCodeCopy", 4, 0), b("eth.getExternalCodeSize", 1, 1),
			b("eth.getGasLimit", 0, 1), b("eth.getBlockNumber", 0, 1),
			b("eth.getTxGasPrice", 1, 0), b("eth.log", 7, 0),
			b("eth.getBlockTimestamp", 0, 1), b("eth.getTxOrigin", 1, 0),
			b("eth.finish", 2, 0), b("eth.revert", 2, 0),
			b("eth.getReturnDataSize", 0, 1), b("eth.returnDataCopy", 3, 0),
			b("eth.selfDestruct", 1, 0), b("eth.selfDestruct_address", 1, 0),
		),
	}
}
